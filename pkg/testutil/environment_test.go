// pkg/testutil/environment_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test TestEnvironment layout and helpers

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/scaffer/pkg/config"
	"github.com/arthur-debert/scaffer/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	env := NewTestEnvironment(t)

	assert.DirExists(t, env.WorkDir)
	assert.DirExists(t, env.HomeDir)
	assert.Equal(t, env.HomeDir, os.Getenv("HOME"))
	assert.Equal(t, env.GlobalConfig, os.Getenv(paths.EnvGlobalConfig))
	assert.Equal(t, env.GlobalConfig, paths.New("").GlobalConfigPath())
	assert.Equal(t, filepath.Join(env.CacheDir, "templates"), paths.New("").TemplateCacheDir())
}

func TestTestEnvironment_Helpers(t *testing.T) {
	env := NewTestEnvironment(t)

	dir := env.WriteTemplate("project/templates", "cli", map[string]string{"cmd/scf_name.go": "package main\n"})
	assert.Equal(t, env.Path("project/templates/cli"), dir)
	assert.Equal(t, "package main\n", env.ReadFile("project/templates/cli/cmd/scf_name.go"))

	env.WriteLocalConfig(config.File{Templates: []string{"templates"}})
	env.WriteGlobalConfig(config.File{TemplateURLs: map[string]string{"web": "https://example.com/web.zip"}})

	cfg := env.LoadConfig()
	require.NotNil(t, cfg.Local)
	assert.Equal(t, []string{env.Path("project/templates")}, cfg.TemplateRoots())
	assert.Equal(t, "https://example.com/web.zip", cfg.TemplateURLs()["web"])
}
