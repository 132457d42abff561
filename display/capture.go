package display

import (
	"github.com/lixenwraith/txtgfx/canvas"
	"github.com/lixenwraith/txtgfx/palette"
)

// Capture records every presented frame. Used as a test double and for
// headless runs.
type Capture struct {
	*Registers

	Frames []canvas.Screen

	// Err, when set, is returned by Present after recording the frame
	Err error
}

// NewCapture returns an empty capture sink
func NewCapture(pal *palette.Palette) *Capture {
	return &Capture{Registers: NewRegisters(pal)}
}

// Present copies the screen into Frames
func (c *Capture) Present(scr *canvas.Screen) error {
	c.Frames = append(c.Frames, *scr)
	return c.Err
}

// Last returns the most recent frame
func (c *Capture) Last() (canvas.Screen, bool) {
	if len(c.Frames) == 0 {
		return canvas.Screen{}, false
	}
	return c.Frames[len(c.Frames)-1], true
}

// Reset drops recorded frames
func (c *Capture) Reset() {
	c.Frames = c.Frames[:0]
}
