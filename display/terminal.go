package display

import (
	"github.com/lixenwraith/txtgfx/canvas"
	"github.com/lixenwraith/txtgfx/palette"
	"github.com/lixenwraith/txtgfx/terminal"
)

// Terminal presents screens on an ANSI terminal
type Terminal struct {
	*Registers

	term  terminal.Terminal
	cells []terminal.Cell
}

// NewTerminal wraps an initialized terminal
func NewTerminal(term terminal.Terminal, pal *palette.Palette) *Terminal {
	return &Terminal{
		Registers: NewRegisters(pal),
		term:      term,
		cells:     make([]terminal.Cell, canvas.Cols*canvas.Rows),
	}
}

// Present converts the screen to terminal cells and flushes them
func (t *Terminal) Present(scr *canvas.Screen) error {
	for row := 0; row < canvas.Rows; row++ {
		for col := 0; col < canvas.Cols; col++ {
			fg, bg, blink := t.Resolve(scr.Colors[row][col])

			cell := &t.cells[row*canvas.Cols+col]
			cell.Rune = GlyphRune(scr.Chars[row][col])
			cell.Fg = t.rgb(fg)
			cell.Bg = t.rgb(bg)
			cell.Attrs = terminal.AttrNone
			if blink {
				cell.Attrs = terminal.AttrBlink
			}
		}
	}

	t.term.Flush(t.cells, canvas.Cols, canvas.Rows)
	if t.CursorVisible() {
		t.term.MoveCursor(t.CursorPos())
	}
	return nil
}

// ShowCursor toggles the terminal cursor
func (t *Terminal) ShowCursor(visible bool) {
	t.Registers.ShowCursor(visible)
	t.term.SetCursorVisible(visible)
}

// SetColor reprograms a register and forces a full redraw so cells already
// on screen pick up the new color
func (t *Terminal) SetColor(i int, r, g, b uint8) {
	t.Registers.SetColor(i, r, g, b)
	t.term.Sync()
}

func (t *Terminal) rgb(i uint8) terminal.RGB {
	c := t.Palette().RGBA(int(i))
	return terminal.RGB{R: c.R, G: c.G, B: c.B}
}
