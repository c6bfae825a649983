// Package ui renders command results and talks to the user.
//
// Results are written in one of three formats: styled terminal output,
// the same layout as plain text, or JSON. Prompting for variable values
// and template selection lives in ui/prompt, markdown rendering in
// ui/markdown.
package ui

import (
	"io"

	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/ui/json"
	"github.com/arthur-debert/scaffer/pkg/ui/terminal"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result from package types.
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto is resolved
// against output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return terminal.NewPlain(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
