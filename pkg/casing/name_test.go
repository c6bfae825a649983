package casing_test

import (
	"testing"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/stretchr/testify/assert"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		input string
		want  casing.Name
	}{
		{"my-app", casing.Name{"my", "app"}},
		{"my_app", casing.Name{"my", "app"}},
		{"my.app", casing.Name{"my", "app"}},
		{"My App", casing.Name{"my", "app"}},
		{"MyApp", casing.Name{"my", "app"}},
		{"MY_APP", casing.Name{"my", "app"}},
		{"  spaced   out  ", casing.Name{"spaced", "out"}},
		{"project", casing.Name{"project"}},
		{"app2", casing.Name{"app2"}},
		{"", casing.Name{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, casing.ParseName(tt.input))
		})
	}
}

func TestNameValid(t *testing.T) {
	prefix := casing.Default()

	assert.True(t, casing.Name{"my", "project"}.Valid(prefix))
	assert.True(t, casing.Name{"v2"}.Valid(prefix))
	assert.False(t, casing.Name{}.Valid(prefix))
	assert.False(t, casing.Name{"2fa"}.Valid(prefix))
	assert.False(t, casing.Name{"My"}.Valid(prefix))
	assert.False(t, casing.Name{"scf", "project"}.Valid(prefix))
	assert.False(t, casing.Name{"my-project"}.Valid(prefix))
}

func TestNameHelpers(t *testing.T) {
	n := casing.Name{"project", "version"}

	assert.Equal(t, "project version", n.String())
	assert.Equal(t, "project-version", n.Kebab())
	assert.Equal(t, "projectversion", n.Flatten())
	assert.True(t, n.HasPrefix(casing.Name{"project"}))
	assert.True(t, n.HasPrefix(n))
	assert.False(t, n.HasPrefix(casing.Name{"version"}))
	assert.False(t, n.HasPrefix(casing.Name{"project", "version", "x"}))
	assert.False(t, n.HasPrefix(nil))
	assert.True(t, n.Equal(casing.Name{"project", "version"}))
}
