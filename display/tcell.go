package display

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/txtgfx/canvas"
	"github.com/lixenwraith/txtgfx/palette"
)

// Tcell presents screens through a tcell.Screen and exposes its key events
type Tcell struct {
	*Registers

	screen tcell.Screen
	events chan tcell.Event

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// NewTcell wraps an initialized tcell screen and starts reading its events
func NewTcell(screen tcell.Screen, pal *palette.Palette) *Tcell {
	t := &Tcell{
		Registers: NewRegisters(pal),
		screen:    screen,
		events:    make(chan tcell.Event, 16),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	screen.HideCursor()
	go t.pump()
	return t
}

// pump forwards screen events until Close or until the screen is finalized
func (t *Tcell) pump() {
	defer close(t.stopped)
	defer close(t.events)

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-t.done:
			return
		default:
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close stops forwarding events. Call it before finalizing the screen; the
// screen itself is left to its owner.
func (t *Tcell) Close() {
	t.closeOnce.Do(func() { close(t.done) })
}

// Present writes every cell and shows the frame
func (t *Tcell) Present(scr *canvas.Screen) error {
	for row := 0; row < canvas.Rows; row++ {
		for col := 0; col < canvas.Cols; col++ {
			fg, bg, blink := t.Resolve(scr.Colors[row][col])
			style := tcell.StyleDefault.
				Foreground(t.color(fg)).
				Background(t.color(bg)).
				Blink(blink)
			t.screen.SetContent(col, row, GlyphRune(scr.Chars[row][col]), nil, style)
		}
	}

	if t.CursorVisible() {
		t.screen.ShowCursor(t.CursorPos())
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
	return nil
}

// PollKey waits up to timeout for a key press. A zero timeout only checks
// for a pending key; a negative timeout blocks. Resize events trigger a
// full redraw and are not reported.
func (t *Tcell) PollKey(timeout time.Duration) (rune, bool) {
	var expire <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expire = timer.C
	}

	for {
		var ev tcell.Event
		var ok bool
		if timeout == 0 {
			select {
			case ev, ok = <-t.events:
			default:
				return 0, false
			}
		} else {
			select {
			case ev, ok = <-t.events:
			case <-expire:
				return 0, false
			}
		}
		if !ok {
			return 0, false
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyRune {
				return ev.Rune(), true
			}
			return rune(ev.Key()), true
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *Tcell) color(i uint8) tcell.Color {
	c := t.Palette().RGBA(int(i))
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
