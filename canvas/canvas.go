package canvas

// Grid dimensions. The block grid doubles the vertical resolution of the
// character screen: virtual row y lives in screen row y/2, upper half when
// y is even.
const (
	Cols      = 80
	Rows      = 25
	BlockRows = Rows * 2
)

// Code page 437 glyphs used for block graphics
const (
	GlyphBlank byte = 0
	GlyphSpace byte = 32
	GlyphFull  byte = 219 // █
	GlyphLower byte = 220 // ▄
	GlyphUpper byte = 223 // ▀
)

// Attr is a text-mode attribute byte: foreground in the low nibble,
// background in the high nibble
type Attr uint8

// MakeAttr packs foreground and background color indices
func MakeAttr(fg, bg uint8) Attr {
	return Attr(fg&0x0F | (bg&0x0F)<<4)
}

// Fg returns the foreground color index
func (a Attr) Fg() uint8 { return uint8(a) & 0x0F }

// Bg returns the background color index
func (a Attr) Bg() uint8 { return uint8(a) >> 4 }

// Screen is the physical 80x25 character/attribute grid
type Screen struct {
	Chars  [Rows][Cols]byte
	Colors [Rows][Cols]Attr
}

// Clear zeroes glyphs and attributes
func (s *Screen) Clear() {
	*s = Screen{}
}

// Sink receives finished frames. Implementations live in package display.
type Sink interface {
	Present(scr *Screen) error
}

// Canvas owns the block grid, the screen buffers, and the scratch storage
// used by transforms. Not safe for concurrent use.
type Canvas struct {
	screen Screen
	backup Screen

	blocks    [BlockRows][Cols]uint8
	transform [BlockRows][Cols]uint8
}

// New returns a canvas with all buffers zeroed (black)
func New() *Canvas {
	return &Canvas{}
}

// Screen exposes the screen buffers for direct glyph/attribute access
func (c *Canvas) Screen() *Screen {
	return &c.screen
}

// inGrid reports whether (x, y) addresses a block cell
func inGrid(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < BlockRows
}

// Block returns the color at virtual (x, y), 0 when out of range
func (c *Canvas) Block(x, y int) uint8 {
	if !inGrid(x, y) {
		return 0
	}
	return c.blocks[y][x]
}

// SetBlock writes a single block color. Out-of-range writes are dropped.
func (c *Canvas) SetBlock(x, y int, color uint8) {
	if !inGrid(x, y) {
		return
	}
	c.blocks[y][x] = color & 0x0F
}

// Blocks returns a copy of the block grid
func (c *Canvas) Blocks() [BlockRows][Cols]uint8 {
	return c.blocks
}

// Clear fills the block grid with color
func (c *Canvas) Clear(color uint8) {
	color &= 0x0F
	for y := range c.blocks {
		row := &c.blocks[y]
		row[0] = color
		// Exponential copy
		for filled := 1; filled < Cols; filled *= 2 {
			copy(row[filled:], row[:filled])
		}
	}
}

// ClearScreen zeroes the screen glyph and attribute buffers
func (c *Canvas) ClearScreen() {
	c.screen.Clear()
}

// Present hands the screen buffers to the sink
func (c *Canvas) Present(s Sink) error {
	return s.Present(&c.screen)
}

// PresentBlocks presents the block grid directly as upper-half glyphs,
// bypassing and preserving the screen buffers
func (c *Canvas) PresentBlocks(s Sink) error {
	var scr Screen
	blocksToScreen(&c.blocks, &scr)
	return s.Present(&scr)
}

// SaveBackup snapshots the screen buffers
func (c *Canvas) SaveBackup() {
	c.backup = c.screen
}

// RestoreBackup restores the last snapshot taken by SaveBackup
func (c *Canvas) RestoreBackup() {
	c.screen = c.backup
}
