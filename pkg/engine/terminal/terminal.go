// Package terminal probes the terminal the driver writes to, so
// overlay layout can fit the window and colour can be dropped when
// output is piped to a file.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height, falling
// back to the defaults when stdout is not a terminal.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsTerminal reports whether stdout is an interactive terminal.
// Colour and cursor tricks are only worth emitting when it is.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
