package substitute_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/substitute"
	"github.com/arthur-debert/scaffer/pkg/variables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bind(t *testing.T, args ...string) *variables.Binding {
	t.Helper()
	b, err := variables.ParseAssignments(args, casing.Default())
	require.NoError(t, err)
	return b
}

func TestApply(t *testing.T) {
	binding := bind(t, "project=my-app", "author=Ada Lovelace")

	tests := []struct {
		name string
		text string
		want string
	}{
		{"pascal", "ScfProject", "MyApp"},
		{"snake", "scf_project", "my_app"},
		{"upper snake with literal suffix", "SCF_PROJECT_VERSION", "MY_APP_VERSION"},
		{"kebab", "scf-project", "my-app"},
		{"upper kebab", "SCF-PROJECT", "MY-APP"},
		{"dot", "scf.project", "my.app"},
		{"flat", "scfproject", "myapp"},
		{"flat upper", "SCFPROJECT", "MYAPP"},
		{"multi-word value", "// by ScfAuthor <scf-author>", "// by AdaLovelace <ada-lovelace>"},
		{"several occurrences", "let scf_project = ScfProject::new(); // scf-author",
			"let my_app = MyApp::new(); // ada-lovelace"},
		{"unbound placeholder is kept", "ScfUnknown scf_project", "ScfUnknown my_app"},
		{"no boundary", "fooscfproject", "fooscfproject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, substitute.Apply(tt.text, binding, casing.Default()))
		})
	}
}

func TestApplyWithoutPlaceholdersIsIdentity(t *testing.T) {
	e := substitute.New(casing.Default(), bind(t, "project=my-app"))

	for _, text := range []string{"", "package main\n", "scaffold scf", "ünïcödé\x00bytes"} {
		assert.Equal(t, text, e.Apply(text))
		assert.False(t, e.Changes(text))
	}
	assert.True(t, e.Changes("ScfProject"))
}

func TestApplyPath(t *testing.T) {
	e := substitute.New(casing.Default(), bind(t, "project=my-app"))

	got := e.ApplyPath(filepath.Join("src", "ScfProject", "scf_project.rs"))
	assert.Equal(t, filepath.Join("src", "MyApp", "my_app.rs"), got)
}

func TestApplySegmentSanitizesValues(t *testing.T) {
	e := substitute.New(casing.Default(), bind(t, "name=a/b:c"))

	assert.Equal(t, "a_b_c.txt", e.ApplySegment("scf_name.txt"))
	assert.Equal(t, "a/b:c", e.Apply("scf_name"))
}

func TestApplyCustomPrefix(t *testing.T) {
	binding, err := variables.ParseAssignments([]string{"project=my-app"}, casing.MustPrefix("tpl"))
	require.NoError(t, err)

	got := substitute.Apply("TplProject scf_project", binding, casing.MustPrefix("tpl"))
	assert.Equal(t, "MyApp scf_project", got)
}

func TestApplyFlatUsesBindingOrder(t *testing.T) {
	binding := variables.NewBinding()
	binding.Set(casing.Name{"my", "project"}, "first")
	binding.Set(casing.Name{"myp", "roject"}, "second")

	assert.Equal(t, "FIRST", substitute.Apply("SCFMYPROJECT", binding, casing.Default()))
}
