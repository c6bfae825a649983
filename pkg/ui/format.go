package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks terminal or text depending on where output goes.
	FormatAuto Format = iota
	// FormatTerminal renders colored, aligned output
	FormatTerminal
	// FormatText renders the same layout without styling
	FormatText
	// FormatJSON renders command results as JSON
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s)
	}
}

// DetectFormat chooses between terminal and text output for w. Anything
// that is not a color-capable terminal gets text, as does NO_COLOR.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	f, ok := w.(*os.File)
	if !ok || !IsTerminal(f) {
		return FormatText
	}
	if termenv.NewOutput(f).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
