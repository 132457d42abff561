package terminal

import (
	"bufio"
	"strconv"
)

// Escape sequences written verbatim
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiSGR0  = []byte("\x1b[0m")
	csiRIS   = []byte("\x1bc")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// With DECAWM off the cursor parks at the right margin, so writing the
	// bottom-right cell of a full-height frame does not scroll
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	csiBg256 = []byte("\x1b[48;5;")
	csiBgRGB = []byte("\x1b[48;2;")
)

// writeInt writes the decimal form of n, clamped at zero. The digits are
// formatted into the writer's spare capacity when it has room.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte('0' + byte(n))
		return
	}
	if buf := w.AvailableBuffer(); cap(buf) >= 20 {
		w.Write(strconv.AppendInt(buf, int64(n), 10))
		return
	}
	w.WriteString(strconv.Itoa(n))
}

// writeCursorPos moves to column x, row y (both 0-based)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeCursorForward moves right n columns
func writeCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	if n > 1 {
		writeInt(w, n)
	}
	w.WriteByte('C')
}
