// img2bin converts a picture into a .bin screen image of half-block cells.
//
// Usage examples:
//
// # Convert with the default palette, writing photo.bin
// ./img2bin photo.png
//
// # Use palette overrides from a settings file and preview the result
// ./img2bin -config txtview.toml -o art.bin -preview art.png photo.bmp
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"

	"github.com/lixenwraith/txtgfx/ansibin"
	"github.com/lixenwraith/txtgfx/canvas"
	"github.com/lixenwraith/txtgfx/config"
	"github.com/lixenwraith/txtgfx/display"
	"github.com/lixenwraith/txtgfx/palette"
)

func main() {
	var (
		output   string
		cfgPath  string
		preview  string
		previewZ int
	)

	flag.StringVar(&output, "o", "", "Output .bin path (default: input name with .bin)")
	flag.StringVar(&cfgPath, "config", "", "TOML settings file for palette overrides")
	flag.StringVar(&preview, "preview", "", "Also render the result to this PNG")
	flag.IntVar(&previewZ, "zoom", 1, "Preview magnification")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: img2bin [options] <image>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	input := flag.Arg(0)
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".bin"
	}

	if err := convert(input, output, cfgPath, preview, previewZ); err != nil {
		fmt.Fprintf(os.Stderr, "img2bin: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", output)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, errors.Wrapf(err, "decode %s", path)
}

// convert resamples the picture onto the block grid and saves the screen
func convert(input, output, cfgPath, preview string, zoom int) error {
	img, err := loadImage(input)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	pal := palette.Default()
	if err := cfg.ApplyPalette(pal); err != nil {
		return err
	}

	c := canvas.New()
	c.FromImage(img, pal)
	c.BlocksToScreen()

	// Half-block cells can carry the terminator as their attribute
	if err := ansibin.Save(output, ansibin.Sanitize(c.SaveScreen())); err != nil {
		return err
	}

	if preview == "" {
		return nil
	}
	sink := display.NewImage(pal)
	sink.Zoom = max(zoom, 1)
	if err := c.Present(sink); err != nil {
		return err
	}
	return sink.SavePNG(preview)
}
