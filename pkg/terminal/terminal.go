// ABOUTME: Terminal queries on output files backed by golang.org/x/term
// ABOUTME: Reports whether a file is a terminal and how many columns it shows

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Size returns the dimensions of the terminal attached to f.
func Size(f *os.File) (width, height int, err error) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Columns returns the terminal width of f, or 0 when f is not a terminal.
func Columns(f *os.File) int {
	if !IsTerminal(f) {
		return 0
	}
	w, _, err := Size(f)
	if err != nil {
		return 0
	}
	return w
}
