package topics

import "github.com/arthur-debert/scaffer/pkg/ui/markdown"

// Renderer formats topic content for display.
type Renderer interface {
	// Render takes raw content and the topic file extension.
	Render(content string, ext string) string
}

// PlainRenderer returns content as-is.
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// MarkdownRenderer renders .md topics with glamour and leaves other
// formats alone.
type MarkdownRenderer struct {
	Styled bool
}

// Render implements Renderer.
func (r *MarkdownRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}
	return markdown.Render(content, r.Styled)
}
