//go:build unix

package terminal

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// ColorEnv overrides detection when set to "256" or "truecolor"
const ColorEnv = "TXTGFX_COLOR"

// trueColorVars are set only by emulators known to render 24-bit color
var trueColorVars = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"WEZTERM_PANE",
	"WT_SESSION",
}

// DetectColorMode picks the output color mode from the environment,
// falling back to 256 colors
func DetectColorMode() ColorMode {
	switch os.Getenv(ColorEnv) {
	case "256":
		return ColorMode256
	case "truecolor":
		return ColorModeTrueColor
	}

	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}
	for _, name := range trueColorVars {
		if os.Getenv(name) != "" {
			return ColorModeTrueColor
		}
	}

	termName := os.Getenv("TERM")
	for _, hint := range []string{"truecolor", "24bit", "direct"} {
		if strings.Contains(termName, hint) {
			return ColorModeTrueColor
		}
	}
	return ColorMode256
}

// resetTerminalMode turns echo and line editing back on through /dev/tty,
// which works even when stdin was redirected. Errors are ignored.
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
}
