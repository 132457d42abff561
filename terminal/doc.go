// Package terminal drives an xterm-compatible terminal directly with ANSI
// sequences.
//
// Features:
//   - True color (24-bit) and 256-color output
//   - Double-buffered frames with cell-level diffing
//   - Raw-mode single key polling
//   - SIGWINCH triggered full redraw
//   - Terminal restoration on exit/panic
//
// Frames are drawn anchored at the top-left corner and clipped to the
// terminal, so a fixed 80x25 text screen can be shown in any window size.
package terminal
