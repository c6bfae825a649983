package terminal

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPlain(t *testing.T, result interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewPlain(&buf).RenderResult(result))
	return buf.String()
}

func TestRenderGenerate(t *testing.T) {
	res := &types.GenerateResult{
		Template:    "component",
		Destination: "/work",
		Variables:   []types.Variable{{Name: "name", Value: "user card"}, {Name: "color", Value: "red"}},
		Files: []types.FileReport{
			{Path: "user-card", IsDir: true, Status: types.StatusCreated},
			{Path: "user-card/UserCard.tsx", Status: types.StatusCreated},
			{Path: "user-card/index.ts", Exists: true, Status: types.StatusConflict},
			{Path: "user-card/user_card.css", Status: types.StatusFailed, Error: "permission denied"},
		},
	}

	out := renderPlain(t, res)
	assert.Contains(t, out, "Generated component into /work\n")
	assert.Contains(t, out, "  name  = user card\n")
	assert.Contains(t, out, "  color = red\n")
	assert.Contains(t, out, "  created      user-card/\n")
	assert.Contains(t, out, "  conflict     user-card/index.ts (exists, use --force to overwrite)\n")
	assert.Contains(t, out, "user-card/user_card.css permission denied")
	assert.Contains(t, out, "1 created, 1 skipped, 1 failed")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderGenerate_DryRun(t *testing.T) {
	res := &types.GenerateResult{
		Template:    "component",
		Destination: "/work",
		DryRun:      true,
		Files: []types.FileReport{
			{Path: "a.txt", Status: types.StatusPlanned},
			{Path: "b.txt", Exists: true, Status: types.StatusPlanned},
		},
	}

	out := renderPlain(t, res)
	assert.Contains(t, out, "Dry run: component into /work\n")
	assert.Contains(t, out, "b.txt (exists)")
	assert.Contains(t, out, "2 files would be written, nothing was changed")
}

func TestRenderList(t *testing.T) {
	assert.Contains(t, renderPlain(t, &types.ListResult{}), "No templates found.")

	out := renderPlain(t, &types.ListResult{Templates: []types.TemplateInfo{
		{Name: "api", URL: "https://example.com/api.zip", Cached: true},
		{Name: "component", Path: "/t/component"},
	}})
	assert.Contains(t, out, "  api        https://example.com/api.zip (cached)\n")
	assert.Contains(t, out, "  component  /t/component\n")
}

func TestRenderShow(t *testing.T) {
	out := renderPlain(t, &types.ShowResult{
		Template:  "svc",
		Path:      "/t/svc",
		Prefix:    "scf",
		Variables: []string{"service-name", "owner"},
		HasHook:   true,
		Readme:    "# Service\n\nA small service.\n",
	})
	assert.Contains(t, out, "svc /t/svc\n")
	assert.Contains(t, out, "  service-name\n  owner\n")
	assert.Contains(t, out, "scaffer_init.py")
	assert.Contains(t, out, "A small service.")
}

func TestRenderPullAndAction(t *testing.T) {
	out := renderPlain(t, &types.PullResult{Items: []types.PullItem{
		{Name: "api", URL: "u1", Root: "/cache/1"},
		{Name: "web", URL: "u2", Error: "404"},
	}})
	assert.Contains(t, out, "fetched")
	assert.Contains(t, out, "web 404")

	out = renderPlain(t, &types.ActionResult{Message: "Created index.ts barrel file", Changed: true, Items: []string{"a", "b"}})
	assert.Equal(t, "Created index.ts barrel file\n  a\n  b\n", out)
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"missing", errors.MissingVariables([]string{"name"}), []string{"Error:", "-v name=..."}},
		{"not found", errors.TemplateNotFound("web", []string{"/a", "/b"}), []string{"searched:", "  /a\n", "  /b\n"}},
		{"io", errors.New(errors.ErrIOFailure, "2 file(s) could not be written").WithDetail(errors.DetailPaths, []string{"x/y"}), []string{"  x/y\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewPlain(&buf).RenderError(tt.err))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}
