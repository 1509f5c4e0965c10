// Package detector inspects the environment to decide how output is rendered.
package detector

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/taxa/internal/ui/output"
)

// ColorMode selects whether plain output is styled.
type ColorMode int

const (
	// ColorAuto styles output written to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways styles output unless NO_COLOR is set.
	ColorAlways
	// ColorNever writes plain text.
	ColorNever
)

// IsCI reports whether a CI environment variable is set.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// Interactive reports whether the picker can take over the terminal:
// both streams are terminals and no CI is detected.
func Interactive(in, out any) bool {
	return output.IsTerminal(in) && output.IsTerminal(out) && !IsCI()
}

// ResolveColorMode maps a user flag to a mode.
// userFlag should be one of: "auto", "always", "never", or empty.
func ResolveColorMode(userFlag string) ColorMode {
	switch userFlag {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

// Profile returns the profile plain output to w is styled with.
func Profile(mode ColorMode, w io.Writer) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return output.ColorProfile()
	default:
		return output.ForWriter(w).Profile
	}
}
