package ui

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether both stdin and stdout are attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// GetTerminalWidth returns the current terminal width in columns.
// If the terminal width cannot be determined (non-TTY or error),
// returns Display.DefaultTerminalWidth.
func GetTerminalWidth() int {
	fd := int(os.Stdout.Fd())

	// Check if stdout is a terminal
	if !term.IsTerminal(fd) {
		return Display.DefaultTerminalWidth // pipes, redirects, etc.
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return Display.DefaultTerminalWidth
	}

	return width
}
