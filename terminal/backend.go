package terminal

import "time"

// Backend abstracts the platform terminal device
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the saved terminal mode
	Fini()

	// Size returns the terminal dimensions in cells
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error

	// Read waits up to timeout for input. A nil slice with nil error means
	// no input arrived in time. A negative timeout blocks.
	Read(timeout time.Duration) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
