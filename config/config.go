// Package config loads viewer settings from a TOML file.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/txtgfx/palette"
)

// Sink kinds
const (
	SinkTcell = "tcell"
	SinkANSI  = "ansi"
	SinkPNG   = "png"
)

// Config is the decoded settings file
type Config struct {
	Sink       string        `toml:"sink"`
	Color      string        `toml:"color"`
	Zoom       int           `toml:"zoom"`
	Blink      bool          `toml:"blink"`
	FrameDelay time.Duration `toml:"frame_delay"`

	// Palette overrides registers by index, e.g. "1" = "#0000aa"
	Palette map[string]string `toml:"palette"`
}

// Default returns settings used when no file is given
func Default() Config {
	return Config{
		Sink:       SinkTcell,
		Color:      "auto",
		Zoom:       1,
		FrameDelay: 50 * time.Millisecond,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: read %s", path)
	}
	return Parse(string(data))
}

// Parse decodes TOML text over the defaults
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return cfg, errors.Wrap(err, "config: decode")
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: unknown key %s", key)
	}
	return cfg, cfg.Validate()
}

// Validate checks field ranges
func (c Config) Validate() error {
	switch c.Sink {
	case SinkTcell, SinkANSI, SinkPNG:
	default:
		return errors.Errorf("config: unknown sink %q", c.Sink)
	}
	switch c.Color {
	case "auto", "256", "truecolor":
	default:
		return errors.Errorf("config: unknown color mode %q", c.Color)
	}
	if c.Zoom < 1 {
		return errors.Errorf("config: zoom %d below 1", c.Zoom)
	}
	if c.FrameDelay < 0 {
		return errors.Errorf("config: negative frame delay %s", c.FrameDelay)
	}
	for key, hex := range c.Palette {
		if _, _, err := paletteEntry(key, hex); err != nil {
			return err
		}
	}
	return nil
}

// ApplyPalette writes the palette overrides into pal
func (c Config) ApplyPalette(pal *palette.Palette) error {
	for key, hex := range c.Palette {
		i, dac, err := paletteEntry(key, hex)
		if err != nil {
			return err
		}
		pal.Set(i, dac.R, dac.G, dac.B)
	}
	return nil
}

func paletteEntry(key, hex string) (int, palette.DAC, error) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= palette.Size {
		return 0, palette.DAC{}, errors.Errorf("config: palette index %q out of range", key)
	}
	dac, err := palette.ParseHex(hex)
	if err != nil {
		return 0, palette.DAC{}, errors.Wrapf(err, "config: palette %s", key)
	}
	return i, dac, nil
}
