// pkg/commands/setup/setup_test.go
// TEST TYPE: Command Integration
// DEPENDENCIES: Temp dir environment, line prompter
// PURPOSE: Interactive creation of the local config

package setup_test

import (
	"context"
	"strings"
	"testing"

	"github.com/arthur-debert/scaffer/pkg/commands/setup"
	"github.com/arthur-debert/scaffer/pkg/config"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/testutil"
	"github.com/arthur-debert/scaffer/pkg/ui/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answers(lines ...string) prompt.Asker {
	return prompt.NewLine(strings.NewReader(strings.Join(lines, "\n")+"\n"), nil)
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		toml      bool
		answers   []string
		wantFile  string
		templates []string
		urls      map[string]string
	}{
		{
			name:      "defaults",
			answers:   []string{"", ""},
			wantFile:  "project/scaffer.json",
			templates: []string{"templates"},
		},
		{
			name:      "several directories",
			answers:   []string{" src/templates, ~/shared ,", "n"},
			wantFile:  "project/scaffer.json",
			templates: []string{"src/templates", "~/shared"},
		},
		{
			name:      "with urls",
			answers:   []string{"tpl", "y", "react", "https://github.com/acme/react-tpl", "empty", "", ""},
			wantFile:  "project/scaffer.json",
			templates: []string{"tpl"},
			urls:      map[string]string{"react": "https://github.com/acme/react-tpl"},
		},
		{
			name:      "toml",
			toml:      true,
			answers:   []string{"templates", "no"},
			wantFile:  "project/scaffer.toml",
			templates: []string{"templates"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t)

			result, err := setup.Setup(context.Background(), setup.SetupOptions{
				WorkDir: env.WorkDir,
				TOML:    tt.toml,
				Asker:   answers(tt.answers...),
			})
			require.NoError(t, err)
			assert.True(t, result.Changed)
			assert.Equal(t, env.Path(tt.wantFile), result.Path)

			src, err := config.ReadFile(result.Path)
			require.NoError(t, err)
			assert.True(t, src.Found)
			assert.Equal(t, tt.templates, src.File.Templates)
			if tt.urls != nil {
				assert.Equal(t, tt.urls, src.File.TemplateURLs)
			} else {
				assert.Empty(t, src.File.TemplateURLs)
			}
		})
	}
}

func TestSetup_ExistingConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteLocalConfig(config.File{Templates: []string{"old"}})

	result, err := setup.Setup(context.Background(), setup.SetupOptions{WorkDir: env.WorkDir, Asker: answers("n")})
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, []string{"old"}, env.LoadConfig().Local.File.Templates)

	result, err = setup.Setup(context.Background(), setup.SetupOptions{WorkDir: env.WorkDir, Asker: answers("y", "new", "n")})
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, []string{"new"}, env.LoadConfig().Local.File.Templates)
}

func TestSetup_Errors(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	_, err := setup.Setup(context.Background(), setup.SetupOptions{WorkDir: env.WorkDir})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = setup.Setup(context.Background(), setup.SetupOptions{
		WorkDir: env.WorkDir,
		Asker:   answers("templates", "y", "bad", "not a url"),
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.NoFileExists(t, env.Path("project/scaffer.json"))
}
