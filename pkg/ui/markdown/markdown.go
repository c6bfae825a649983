// Package markdown renders markdown for the terminal with glamour.
package markdown

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Renderer renders markdown documents such as a template's README.md.
type Renderer struct {
	Style string // "auto", "dark", "light", "notty" or a path to a custom style
	Width int    // word wrap width, 0 for glamour's default
	Plain bool   // never emit escape codes
}

// New creates a renderer that detects the terminal background.
func New() *Renderer {
	return &Renderer{Style: "auto"}
}

// Render converts markdown to terminal output. Rendering errors fall back
// to the source text.
func (r *Renderer) Render(content string) string {
	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	if r.Plain {
		options = append(options, glamour.WithColorProfile(termenv.Ascii))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// Render renders content with the auto style when styled is set, and as
// plain "notty" text otherwise.
func Render(content string, styled bool) string {
	r := New()
	if !styled {
		r.Style = "notty"
		r.Plain = true
	}
	return r.Render(content)
}
