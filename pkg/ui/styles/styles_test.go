package styles_test

import (
	"testing"

	"github.com/arthur-debert/scaffer/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	expected := []string{
		"Header", "Success", "Warning", "Error", "Info", "Muted",
		"Template", "FilePath", "Variable", "Value", "DryRunBanner",
		"Planned", "Created", "Overwritten", "Unchanged", "Conflict", "Failed",
	}
	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			_, ok := styles.StyleRegistry[name]
			assert.True(t, ok, "style %s should be registered", name)
		})
	}
}

func TestStatusStylesAlign(t *testing.T) {
	for _, name := range []string{"Planned", "Created", "Overwritten", "Unchanged", "Conflict", "Failed"} {
		assert.Equal(t, 12, styles.GetStyle(name).GetWidth(), name)
	}
}

func TestGetStyle_Unknown(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")
	assert.Equal(t, lipgloss.NewStyle().Render("x"), style.Render("x"))
}

func TestLoadStylesFromData(t *testing.T) {
	data := []byte(`
colors:
  red: {light: "#ff0000", dark: "#ff0000"}
styles:
  Alert:
    bold: true
    foreground: red
`)
	// Tests run from the package directory.
	t.Cleanup(func() {
		require.NoError(t, styles.LoadStyles("styles.yaml"))
	})

	require.NoError(t, styles.LoadStylesFromData(data))
	assert.Len(t, styles.StyleRegistry, 1)
	assert.True(t, styles.GetStyle("Alert").GetBold())

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}

func TestLoadStyles_MissingFile(t *testing.T) {
	assert.Error(t, styles.LoadStyles("/nonexistent/styles.yaml"))
}
