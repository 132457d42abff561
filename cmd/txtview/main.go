// Command txtview shows a .bin screen image or an animated block-graphics
// demo on a terminal, or renders the first frame to PNG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/txtgfx/ansibin"
	"github.com/lixenwraith/txtgfx/canvas"
	"github.com/lixenwraith/txtgfx/config"
	"github.com/lixenwraith/txtgfx/display"
	"github.com/lixenwraith/txtgfx/palette"
	"github.com/lixenwraith/txtgfx/terminal"
)

const (
	logDir      = "logs"
	logFileName = "txtview.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	configFlag = flag.String("config", "", "TOML settings file")
	sinkFlag   = flag.String("sink", config.SinkTcell, "Output: tcell, ansi, png")
	colorFlag  = flag.String("color", "auto", "ANSI color mode: auto, truecolor, 256")
	zoomFlag   = flag.Int("zoom", 1, "PNG magnification")
	blinkFlag  = flag.Bool("blink", false, "Treat background bit 3 as blink")
	outFlag    = flag.String("out", "txtview.png", "PNG output path")
	scriptFlag = flag.String("script", "", "Lua scene script")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+filepath.Join(logDir, logFileName))
)

// setupLogging routes the standard logger to a rotated file when debug is
// set and discards it otherwise, keeping the terminal clean
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("txtview_%s.log", time.Now().Format("20060102_150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// loadConfig reads the settings file, then applies flags given explicitly
// on the command line
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sink":
			cfg.Sink = *sinkFlag
		case "color":
			cfg.Color = *colorFlag
		case "zoom":
			cfg.Zoom = *zoomFlag
		case "blink":
			cfg.Blink = *blinkFlag
		}
	})
	return cfg, cfg.Validate()
}

func resolveColorMode(name string) terminal.ColorMode {
	switch name {
	case "256":
		return terminal.ColorMode256
	case "truecolor":
		return terminal.ColorModeTrueColor
	default:
		return terminal.DetectColorMode()
	}
}

func main() {
	// Terminal must be restored even if rendering panics
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTXTVIEW CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: txtview [flags] [image.bin]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "txtview: %v\n", err)
		os.Exit(1)
	}

	pal := palette.Default()
	if err := cfg.ApplyPalette(pal); err != nil {
		fmt.Fprintf(os.Stderr, "txtview: %v\n", err)
		os.Exit(1)
	}

	var sc scene
	switch {
	case *scriptFlag != "":
		ls := newLuaScene(*scriptFlag)
		defer ls.Close()
		sc = ls
	case flag.NArg() > 0:
		sc = newImageScene(ansibin.Load(flag.Arg(0)))
	default:
		sc = newDemoScene()
	}

	if err := run(cfg, pal, sc); err != nil {
		fmt.Fprintf(os.Stderr, "txtview: %v\n", err)
		os.Exit(1)
	}
}

// output is a sink with the register surface every display sink carries
type output interface {
	display.Sink
	display.Hardware
	Blinking() bool
}

// keyFunc waits up to timeout for a key
type keyFunc func(timeout time.Duration) (rune, bool)

func run(cfg config.Config, pal *palette.Palette, sc scene) error {
	c := canvas.New()

	switch cfg.Sink {
	case config.SinkPNG:
		img := display.NewImage(pal)
		img.Zoom = cfg.Zoom
		img.SetBlinking(cfg.Blink)
		if err := sc.Frame(c, img); err != nil {
			return err
		}
		if err := img.SavePNG(*outFlag); err != nil {
			return err
		}
		log.Printf("wrote %s", *outFlag)
		return nil

	case config.SinkANSI:
		term := terminal.New(resolveColorMode(cfg.Color))
		if err := term.Init(); err != nil {
			return err
		}
		defer term.Fini()

		out := display.NewTerminal(term, pal)
		out.SetBlinking(cfg.Blink)
		return loop(c, out, sc, cfg.FrameDelay, func(timeout time.Duration) (rune, bool) {
			k, ok := term.ReadKey(timeout)
			return rune(k), ok
		})

	default:
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()

		out := display.NewTcell(screen, pal)
		defer out.Close()
		out.SetBlinking(cfg.Blink)
		return loop(c, out, sc, cfg.FrameDelay, out.PollKey)
	}
}

// loop presents frames until a quit key arrives
func loop(c *canvas.Canvas, out output, sc scene, delay time.Duration, readKey keyFunc) error {
	for {
		if err := sc.Frame(c, out); err != nil {
			return err
		}

		timeout := delay
		if !sc.Animated() {
			timeout = -1
		}
		key, ok := readKey(timeout)
		if !ok {
			// A blocking read only fails once input is closed
			if timeout < 0 {
				return nil
			}
			continue
		}

		switch key {
		case 'q', 'Q', 27, 3:
			return nil
		case 'b':
			out.SetBlinking(!out.Blinking())
		default:
			if err := sc.Key(key, out); err != nil {
				return err
			}
		}
	}
}
