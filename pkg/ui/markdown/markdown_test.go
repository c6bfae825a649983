package markdown_test

import (
	"testing"

	"github.com/arthur-debert/scaffer/pkg/ui/markdown"
	"github.com/stretchr/testify/assert"
)

func TestRender_Plain(t *testing.T) {
	out := markdown.Render("# Rust library\n\nRun `cargo build`.\n", false)

	assert.Contains(t, out, "Rust library")
	assert.Contains(t, out, "cargo build")
}

func TestRender_BadStyleFallsBack(t *testing.T) {
	r := &markdown.Renderer{Style: "/nonexistent/style.json"}
	src := "# Title\n"
	assert.Equal(t, src, r.Render(src))
}
