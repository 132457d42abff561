package terminal

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone  Attr = 0
	AttrBold  Attr = 1 << 0
	AttrBlink Attr = 1 << 4
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns the color capability output is encoded for
	ColorMode() ColorMode

	// Flush writes a row-major cell frame (cells[y*width + x]) anchored at
	// the top-left corner, clipped to the terminal
	Flush(cells []Cell, width, height int)

	// Clear fills screen with specified background color
	Clear(bg RGB)

	// SetCursorVisible shows/hides cursor
	SetCursorVisible(visible bool)

	// MoveCursor positions cursor (0-indexed)
	MoveCursor(x, y int)

	// Sync forces full redraw on the next Flush
	Sync()

	// ReadKey waits up to timeout for a key press and returns its first
	// byte. A negative timeout blocks; zero polls. Escape sequences are
	// skipped, so 27 means a lone ESC.
	ReadKey(timeout time.Duration) (key byte, ok bool)
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend
	output  *outputBuffer

	cursorVisible atomic.Bool
	resized       atomic.Bool

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on stdin/stdout. Without an explicit mode the
// color capability is detected from the environment.
func New(colorMode ...ColorMode) Terminal {
	return NewWithBackend(newBackend(), colorMode...)
}

// NewWithBackend creates a Terminal over a custom backend
func NewWithBackend(b Backend, colorMode ...ColorMode) Terminal {
	var c ColorMode
	if len(colorMode) == 0 {
		c = DetectColorMode()
	} else {
		c = colorMode[0]
	}

	t := &termImpl{backend: b}
	t.output = newOutputBuffer(writerFunc(b.Write), c)
	return t
}

// writerFunc adapts Backend.Write to io.Writer
type writerFunc func(p []byte) error

func (f writerFunc) Write(p []byte) (int, error) {
	if err := f(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	// Terminal content is lost on resize; redraw everything on next flush
	t.backend.SetResizeHandler(func(w, h int) {
		t.resized.Store(true)
	})

	t.writeRaw(csiAltScreenEnter)
	t.writeRaw(csiCursorHide)
	t.writeRaw(csiAutoWrapOff)
	t.cursorVisible.Store(false)

	t.output.clear(RGBBlack)

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.writeRaw(csiCursorShow)
	t.writeRaw(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alt screen so the main buffer wraps
	t.writeRaw(csiAutoWrapOn)
	t.writeRaw(csiSGR0)

	t.backend.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

// ColorMode returns the output color mode
func (t *termImpl) ColorMode() ColorMode {
	return t.output.colorMode
}

// Flush writes cell buffer to terminal
func (t *termImpl) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.resized.Swap(false) {
		t.output.clear(RGBBlack)
	}

	viewW, viewH := t.backend.Size()
	t.output.flush(cells, width, height, viewW, viewH)
}

// Clear fills screen with background color
func (t *termImpl) Clear(bg RGB) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.output.clear(bg)
}

// SetCursorVisible shows/hides cursor
func (t *termImpl) SetCursorVisible(visible bool) {
	if t.cursorVisible.Swap(visible) == visible {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	w := t.output.writer
	if visible {
		w.Write(csiCursorShow)
	} else {
		w.Write(csiCursorHide)
	}
	w.Flush()
}

// MoveCursor positions cursor (0-indexed), clamped to the terminal
func (t *termImpl) MoveCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.output.invalidateCursor()

	w, h := t.backend.Size()
	x = max(0, min(x, w-1))
	y = max(0, min(y, h-1))

	wBuf := t.output.writer
	writeCursorPos(wBuf, x, y)
	wBuf.Flush()
}

// Sync forces full redraw
func (t *termImpl) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	// Diff-based rendering assumes the physical terminal matches the front buffer
	t.output.clear(RGBBlack)
}

// ReadKey waits for input on the backend. Reads starting with ESC and
// carrying more bytes are escape sequences (arrows, function keys, Alt
// chords); they are discarded so only a lone ESC reports 27.
func (t *termImpl) ReadKey(timeout time.Duration) (byte, bool) {
	for {
		data, err := t.backend.Read(timeout)
		if err != nil || len(data) == 0 {
			return 0, false
		}
		if data[0] == 0x1b && len(data) > 1 {
			continue
		}
		return data[0], true
	}
}

// writeRaw writes raw bytes to output
func (t *termImpl) writeRaw(data []byte) {
	t.backend.Write(data)
}

// EmergencyReset attempts to restore terminal to sane state.
// Call this from panic recovery if Fini() cannot be called normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
