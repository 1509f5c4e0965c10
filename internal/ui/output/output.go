// Package output creates termenv outputs with the color handling shared by
// the logger, the picker and the plain tree printer.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile returns the profile for interactive output. NO_COLOR forces
// Ascii, otherwise the terminal is asked.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates an output that always styles, honoring NO_COLOR. A nil writer
// selects stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)
	return termenv.NewOutput(w, opts...)
}

// ForWriter creates an output that only styles when w is a terminal.
func ForWriter(w io.Writer) *termenv.Output {
	if !IsTerminal(w) {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return New(w)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
