// Package detector provides terminal and CI environment detection.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fder is implemented by writers backed by a file descriptor, such as *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// IsCI reports whether the process runs in a CI environment.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// Interactive reports whether output to w should be treated as interactive.
// It is false for non-terminals and in CI.
func Interactive(w io.Writer) bool {
	return IsTerminal(w) && !IsCI()
}
