// Package display presents canvas screens on concrete outputs.
//
// Every sink embeds Registers, a software stand-in for the text-mode
// hardware registers: the 16-color palette, the blink/intensity bit, cursor
// visibility and user-defined character bitmaps.
package display

import (
	"github.com/lixenwraith/txtgfx/canvas"
	"github.com/lixenwraith/txtgfx/palette"
)

// Sink receives finished frames
type Sink = canvas.Sink

// GlyphHeight is the scanline count of a user-defined character
const GlyphHeight = 16

// Hardware is the register surface a program can poke besides frame data
type Hardware interface {
	SetColor(i int, r, g, b uint8)
	Color(i int) (r, g, b uint8)
	ShowCursor(visible bool)
	SetBlinking(enabled bool)
	DefineChar(code byte, rows [GlyphHeight]byte)
}

// Registers holds hardware state shared by all sinks
type Registers struct {
	pal      *palette.Palette
	blink    bool
	cursor   bool
	cursorX  int
	cursorY  int
	userFont map[byte][GlyphHeight]byte
}

// NewRegisters returns registers over pal, or the default palette when nil.
// Blinking starts disabled so all 16 background colors are available.
func NewRegisters(pal *palette.Palette) *Registers {
	if pal == nil {
		pal = palette.Default()
	}
	return &Registers{
		pal:      pal,
		userFont: make(map[byte][GlyphHeight]byte),
	}
}

// Palette returns the live palette
func (r *Registers) Palette() *palette.Palette {
	return r.pal
}

// SetColor programs palette register i with 6-bit components
func (r *Registers) SetColor(i int, red, green, blue uint8) {
	r.pal.Set(i, red, green, blue)
}

// Color reads palette register i
func (r *Registers) Color(i int) (red, green, blue uint8) {
	return r.pal.Get(i)
}

// ShowCursor toggles the hardware cursor
func (r *Registers) ShowCursor(visible bool) {
	r.cursor = visible
}

// CursorVisible reports the cursor state
func (r *Registers) CursorVisible() bool {
	return r.cursor
}

// SetCursorPos moves the hardware cursor, clamped to the screen
func (r *Registers) SetCursorPos(x, y int) {
	r.cursorX = max(0, min(x, canvas.Cols-1))
	r.cursorY = max(0, min(y, canvas.Rows-1))
}

// CursorPos returns the hardware cursor cell
func (r *Registers) CursorPos() (x, y int) {
	return r.cursorX, r.cursorY
}

// SetBlinking selects blink mode (true) or 16 background colors (false)
func (r *Registers) SetBlinking(enabled bool) {
	r.blink = enabled
}

// Blinking reports whether attribute bit 7 means blink
func (r *Registers) Blinking() bool {
	return r.blink
}

// DefineChar replaces the bitmap of character code. Bit 7 of each row is
// the leftmost pixel.
func (r *Registers) DefineChar(code byte, rows [GlyphHeight]byte) {
	r.userFont[code] = rows
}

// UserGlyph returns the bitmap installed by DefineChar
func (r *Registers) UserGlyph(code byte) ([GlyphHeight]byte, bool) {
	rows, ok := r.userFont[code]
	return rows, ok
}

// Resolve splits an attribute into the foreground and background registers
// actually shown. In blink mode the top background bit becomes the blink flag.
func (r *Registers) Resolve(attr canvas.Attr) (fg, bg uint8, blink bool) {
	fg, bg = attr.Fg(), attr.Bg()
	if r.blink {
		blink = bg&0x08 != 0
		bg &= 0x07
	}
	return fg, bg, blink
}

var (
	_ Sink = (*Capture)(nil)
	_ Sink = (*Terminal)(nil)
	_ Sink = (*Tcell)(nil)
	_ Sink = (*Image)(nil)

	_ Hardware = (*Registers)(nil)
	_ Hardware = (*Terminal)(nil)
)
