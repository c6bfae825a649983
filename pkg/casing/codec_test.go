package casing_test

import (
	"testing"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDecomposeRoundTrip(t *testing.T) {
	names := []casing.Name{
		{"project"},
		{"my", "project"},
		{"api2", "client"},
		{"a", "b", "c"},
		{"http", "server", "v2"},
	}
	prefixes := []casing.Prefix{casing.Default(), casing.MustPrefix("tpl"), casing.MustPrefix("Tmpl")}

	for _, prefix := range prefixes {
		for _, pat := range casing.Patterns {
			for _, name := range names {
				rendered := casing.Render(name, pat, prefix)
				t.Run(rendered, func(t *testing.T) {
					require.True(t, name.Valid(prefix))

					got, gotPat, ok := casing.Decompose(rendered, prefix, name)
					require.True(t, ok, "decompose %q", rendered)
					assert.Equal(t, name, got)
					assert.Equal(t, pat, gotPat)
				})
			}
		}
	}
}

func TestRender(t *testing.T) {
	name := casing.Name{"my", "project"}
	prefix := casing.Default()

	tests := []struct {
		pattern casing.Pattern
		want    string
	}{
		{casing.Pattern{Style: casing.StylePascal}, "ScfMyProject"},
		{casing.Pattern{Style: casing.StyleKebab}, "scf-my-project"},
		{casing.Pattern{Style: casing.StyleKebab, Upper: true}, "SCF-MY-PROJECT"},
		{casing.Pattern{Style: casing.StyleDot}, "scf.my.project"},
		{casing.Pattern{Style: casing.StyleDot, Upper: true}, "SCF.MY.PROJECT"},
		{casing.Pattern{Style: casing.StyleSnake}, "scf_my_project"},
		{casing.Pattern{Style: casing.StyleSnake, Upper: true}, "SCF_MY_PROJECT"},
		{casing.Pattern{Style: casing.StyleFlat}, "scfmyproject"},
		{casing.Pattern{Style: casing.StyleFlat, Upper: true}, "SCFMYPROJECT"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, casing.Render(name, tt.pattern, prefix))
		})
	}
}

func TestDecomposeRejects(t *testing.T) {
	prefix := casing.Default()

	tests := []struct {
		name       string
		identifier string
	}{
		{"no prefix", "MyProject"},
		{"prefix only", "scf"},
		{"separator without word", "scf_"},
		{"empty word", "scf__project"},
		{"mixed case snake", "scf_My_project"},
		{"mixed case upper snake", "SCF_MY_project"},
		{"pascal lowercase start", "Scfproject"},
		{"title prefix with separator", "Scf_project"},
		{"word starting with digit", "scf-2fa"},
		{"trailing separator", "scf-project-"},
		{"prefix as word", "scf-scf"},
		{"pascal prefix as word", "ScfScf"},
		{"punctuation", "scf-my!project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := casing.Decompose(tt.identifier, prefix)
			assert.False(t, ok, "decompose %q should fail", tt.identifier)
		})
	}
}

func TestDecomposeFlat(t *testing.T) {
	prefix := casing.Default()

	t.Run("single word without known names", func(t *testing.T) {
		name, pat, ok := casing.Decompose("scfmyproject", prefix)
		require.True(t, ok)
		assert.Equal(t, casing.Name{"myproject"}, name)
		assert.Equal(t, casing.Pattern{Style: casing.StyleFlat}, pat)
	})

	t.Run("earliest known name wins", func(t *testing.T) {
		known := []casing.Name{{"my", "project"}, {"myp", "roject"}}
		name, pat, ok := casing.Decompose("SCFMYPROJECT", prefix, known...)
		require.True(t, ok)
		assert.Equal(t, casing.Name{"my", "project"}, name)
		assert.Equal(t, casing.Pattern{Style: casing.StyleFlat, Upper: true}, pat)
	})
}

func TestRenderValue(t *testing.T) {
	value := casing.ParseName("my-app")

	assert.Equal(t, "MyApp", casing.RenderValue(value, casing.Pattern{Style: casing.StylePascal}))
	assert.Equal(t, "my_app", casing.RenderValue(value, casing.Pattern{Style: casing.StyleSnake}))
	assert.Equal(t, "MY_APP", casing.RenderValue(value, casing.Pattern{Style: casing.StyleSnake, Upper: true}))
	assert.Equal(t, "my.app", casing.RenderValue(value, casing.Pattern{Style: casing.StyleDot}))
	assert.Equal(t, "MYAPP", casing.RenderValue(value, casing.Pattern{Style: casing.StyleFlat, Upper: true}))
}

func TestNewPrefix(t *testing.T) {
	p, err := casing.NewPrefix("TpL")
	require.NoError(t, err)
	assert.Equal(t, "tpl", p.String())
	assert.Equal(t, "Tpl", p.Lead(casing.Pattern{Style: casing.StylePascal}))
	assert.Equal(t, "TPL_", p.Lead(casing.Pattern{Style: casing.StyleSnake, Upper: true}))

	_, err = casing.NewPrefix("")
	assert.Error(t, err)

	_, err = casing.NewPrefix("x")
	assert.Error(t, err)

	_, err = casing.NewPrefix("sc-f")
	assert.Error(t, err)
}

func TestPatternValid(t *testing.T) {
	for _, pat := range casing.Patterns {
		assert.True(t, pat.Valid(), pat.String())
	}
	assert.False(t, casing.Pattern{Style: casing.StylePascal, Upper: true}.Valid())
}
