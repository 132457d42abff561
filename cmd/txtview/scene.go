package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/txtgfx/ansibin"
	"github.com/lixenwraith/txtgfx/canvas"
	"github.com/lixenwraith/txtgfx/display"
	"github.com/lixenwraith/txtgfx/palette"
	"github.com/lixenwraith/txtgfx/script"
)

// scene produces frames and reacts to keys
type scene interface {
	// Frame draws the next frame and presents it
	Frame(c *canvas.Canvas, out canvas.Sink) error
	// Key handles a key not consumed by the viewer loop
	Key(key rune, hw display.Hardware) error
	// Animated reports whether frames change without input
	Animated() bool
}

// imageScene shows a .bin image; h/j/k/l scroll it through the block grid
type imageScene struct {
	img     ansibin.Image
	dx, dy  int
	rotated float64
}

func newImageScene(img ansibin.Image) *imageScene {
	return &imageScene{img: img}
}

func (s *imageScene) Frame(c *canvas.Canvas, out canvas.Sink) error {
	c.ClearScreen()
	c.DrawImage(s.img, false)
	if s.dx == 0 && s.dy == 0 && s.rotated == 0 {
		return c.Present(out)
	}

	// Offsets work in block space, which only exists for block glyphs
	c.BlocksFromScreen()
	c.Shift(s.dx, s.dy)
	if s.rotated != 0 {
		c.Rotate(s.rotated)
	}
	return c.PresentBlocks(out)
}

func (s *imageScene) Key(key rune, hw display.Hardware) error {
	switch key {
	case 'h':
		s.dx--
	case 'l':
		s.dx++
	case 'k':
		s.dy--
	case 'j':
		s.dy++
	case 'r':
		s.rotated += math.Pi / 12
	case '0':
		s.dx, s.dy, s.rotated = 0, 0, 0
	}
	return nil
}

func (s *imageScene) Animated() bool { return false }

// demoScene scrolls a composed block picture with a status line on top
type demoScene struct {
	frame  int
	paused bool
	rng    *rand.Rand
	built  bool

	// transform keys waiting for the next frame
	pending []rune
}

func newDemoScene() *demoScene {
	return &demoScene{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// build paints the base picture into the block grid
func (s *demoScene) build(c *canvas.Canvas) {
	c.Clear(1)
	c.FillRect(0, 40, canvas.Cols, 10, 2)
	c.FillCircle(64, 12, 7, 14)
	c.StrokeCircle(64, 12, 9, 6)
	c.Triangle(6, 39, 20, 20, 34, 39, 8)
	c.Triangle(26, 39, 38, 24, 50, 39, 7)
	c.StrokeRect(2, 2, 24, 14, 15)
	c.LargeText(4, 4, "TXT", 12)
	for x := 0; x < canvas.Cols; x += 8 {
		c.Line(x, 49, x+4, 42, 10)
	}
	s.built = true
}

func (s *demoScene) Frame(c *canvas.Canvas, out canvas.Sink) error {
	if !s.built {
		s.build(c)
	}
	for _, key := range s.pending {
		switch key {
		case 'r':
			c.Rotate(math.Pi / 12)
		case 's':
			c.Scale(2)
		}
	}
	s.pending = s.pending[:0]

	if !s.paused {
		c.ShiftRow(45, 1)
		c.ShiftRow(46, -1)
		if s.frame%4 == 0 {
			c.Shift(1, 0)
		}
		s.frame++
	}

	c.BlocksToScreen()
	c.PaintArea(0, 0, canvas.Cols, 1, canvas.MakeAttr(15, 0))
	c.PrintString(fmt.Sprintf(" frame %-6d  q quit  space pause  r rotate  s scale  p palette  c reset", s.frame), 0, 0)
	return c.Present(out)
}

// Key handles demo controls. Rotate and scale are queued for the next
// frame since they need the canvas.
func (s *demoScene) Key(key rune, hw display.Hardware) error {
	switch key {
	case ' ':
		s.paused = !s.paused
	case 'p':
		for i := 1; i < palette.Size; i++ {
			hw.SetColor(i, uint8(s.rng.Intn(64)), uint8(s.rng.Intn(64)), uint8(s.rng.Intn(64)))
		}
	case 'P':
		def := palette.Default()
		for i := 0; i < palette.Size; i++ {
			hw.SetColor(i, def[i].R, def[i].G, def[i].B)
		}
	case 'c':
		s.built = false
		s.frame = 0
	case 'r', 's':
		s.pending = append(s.pending, key)
	}
	return nil
}

func (s *demoScene) Animated() bool { return true }

// luaScene runs a Lua script; the VM is bound on the first frame when the
// canvas and sink are known
type luaScene struct {
	path  string
	vm    *script.VM
	frame int
}

func newLuaScene(path string) *luaScene {
	return &luaScene{path: path}
}

func (s *luaScene) Frame(c *canvas.Canvas, out canvas.Sink) error {
	if s.vm == nil {
		hw, _ := out.(display.Hardware)
		s.vm = script.New(c, hw)
		if err := s.vm.Load(s.path); err != nil {
			return err
		}
	}
	if err := s.vm.Frame(s.frame); err != nil {
		return err
	}
	s.frame++
	return c.Present(out)
}

func (s *luaScene) Key(key rune, hw display.Hardware) error {
	if s.vm == nil {
		return nil
	}
	s.vm.SetHardware(hw)
	return s.vm.Key(key)
}

func (s *luaScene) Animated() bool {
	return s.vm == nil || s.vm.Has("frame")
}

// Close releases the Lua state
func (s *luaScene) Close() {
	if s.vm != nil {
		s.vm.Close()
	}
}
