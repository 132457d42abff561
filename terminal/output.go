package terminal

import (
	"bufio"
	"io"
)

// outputBuffer manages double-buffered terminal output with diffing
type outputBuffer struct {
	front     []Cell
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, 32768),
		colorMode: colorMode,
	}
}

// resize updates buffer dimensions and invalidates the front buffer
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height
	o.forceFullRedraw()
}

// cellEqual compares two cells for equality. A blank cell shows only its
// background, so foreground differences are ignored there.
func cellEqual(a, b Cell) bool {
	if a.Rune != b.Rune || a.Attrs != b.Attrs {
		return false
	}
	if a.Rune == 0 || a.Rune == ' ' {
		return a.Bg == b.Bg
	}
	return a.Fg == b.Fg && a.Bg == b.Bg
}

// flush writes the frame, diffing against the front buffer. Only the part of
// the frame inside the viewW x viewH terminal area is drawn.
func (o *outputBuffer) flush(cells []Cell, width, height, viewW, viewH int) {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}
	if len(cells) < width*height {
		return
	}

	w := o.writer
	drawW := min(width, viewW)
	drawH := min(height, viewH)

	for y := 0; y < drawH; y++ {
		rowStart := y * width
		x := 0

		for x < drawW {
			idx := rowStart + x
			if cellEqual(cells[idx], o.front[idx]) {
				x++
				continue
			}

			// Position cursor once for this dirty run
			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX = x
				o.cursorY = y
				o.cursorValid = true
			}

			// Write contiguous dirty cells, emitting style only when changed
			for x < drawW {
				cidx := rowStart + x
				c := cells[cidx]
				if cellEqual(c, o.front[cidx]) {
					break
				}

				o.writeStyleCoalesced(w, c.Fg, c.Bg, c.Attrs)

				r := c.Rune
				if r == 0 {
					r = ' '
				}
				if r < 0x80 {
					w.WriteByte(byte(r))
				} else {
					w.WriteRune(r)
				}

				o.front[cidx] = c
				o.cursorX++
				x++
			}
		}
	}

	w.Write(csiSGR0)
	o.lastValid = false

	w.Flush()
}

// writeStyleCoalesced emits a single combined SGR sequence when style changes
func (o *outputBuffer) writeStyleCoalesced(w *bufio.Writer, fg, bg RGB, attr Attr) {
	fgChanged := !o.lastValid || fg != o.lastFg
	bgChanged := !o.lastValid || bg != o.lastBg
	attrChanged := !o.lastValid || attr != o.lastAttr

	if !fgChanged && !bgChanged && !attrChanged {
		return
	}

	if attrChanged {
		// Attribute removal needs a reset, so rewrite the whole style
		w.Write(csi)
		w.WriteByte('0')
		if attr&AttrBold != 0 {
			w.Write([]byte(";1"))
		}
		if attr&AttrBlink != 0 {
			w.Write([]byte(";5"))
		}
		w.WriteByte(';')
		o.writeColor(w, fg, false)
		w.WriteByte(';')
		o.writeColor(w, bg, true)
		w.WriteByte('m')
	} else {
		w.Write(csi)
		if fgChanged {
			o.writeColor(w, fg, false)
		}
		if fgChanged && bgChanged {
			w.WriteByte(';')
		}
		if bgChanged {
			o.writeColor(w, bg, true)
		}
		w.WriteByte('m')
	}

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

// writeColor writes color parameters without CSI prefix or 'm' suffix
func (o *outputBuffer) writeColor(w *bufio.Writer, c RGB, background bool) {
	base := byte('3')
	if background {
		base = '4'
	}
	w.WriteByte(base)
	if o.colorMode == ColorModeTrueColor {
		// 38;2;R;G;B
		w.Write([]byte("8;2;"))
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
		return
	}
	// 38;5;N
	w.Write([]byte("8;5;"))
	writeInt(w, int(RGBTo256(c)))
}

// writeBgFull writes a complete background color sequence
func (o *outputBuffer) writeBgFull(w *bufio.Writer, bg RGB) {
	if o.colorMode == ColorModeTrueColor {
		w.Write(csiBgRGB)
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
	} else {
		w.Write(csiBg256)
		writeInt(w, int(RGBTo256(bg)))
	}
	w.WriteByte('m')
}

// forceFullRedraw clears front buffer to force complete redraw
func (o *outputBuffer) forceFullRedraw() {
	for i := range o.front {
		o.front[i] = Cell{Rune: -1}
	}
	o.lastValid = false
	o.cursorValid = false
}

// clear writes a clear screen with specified background
func (o *outputBuffer) clear(bg RGB) {
	w := o.writer
	w.Write(csiSGR0)
	o.writeBgFull(w, bg)
	w.Write(csiClear)
	w.Write(csiSGR0)

	o.lastValid = false
	o.cursorValid = false
	w.Flush()

	o.forceFullRedraw()
}

// invalidateCursor marks cursor position as unknown
func (o *outputBuffer) invalidateCursor() {
	o.cursorValid = false
}
