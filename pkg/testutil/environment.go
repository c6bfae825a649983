// pkg/testutil/environment.go
// DEPENDENCIES: config, paths
// PURPOSE: Isolated project/home/cache layout for command tests

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/scaffer/pkg/config"
	"github.com/arthur-debert/scaffer/pkg/paths"
)

// TestEnvironment is a throwaway directory tree standing in for a user's
// machine: a project directory to run commands in, a home directory with
// the global config, and cache and state directories. The process
// environment is pointed at it for the duration of the test.
type TestEnvironment struct {
	Root         string
	WorkDir      string
	HomeDir      string
	GlobalConfig string
	CacheDir     string
	StateDir     string

	t *testing.T
}

// NewTestEnvironment creates the tree under t.TempDir().
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:     root,
		WorkDir:  filepath.Join(root, "project"),
		HomeDir:  filepath.Join(root, "home"),
		CacheDir: filepath.Join(root, "cache"),
		StateDir: filepath.Join(root, "state"),
		t:        t,
	}
	env.GlobalConfig = filepath.Join(env.HomeDir, paths.GlobalConfigFile)

	for _, dir := range []string{env.WorkDir, env.HomeDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv(paths.EnvGlobalConfig, env.GlobalConfig)
	t.Setenv(paths.EnvCacheDir, env.CacheDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	t.Setenv(config.EnvTemplates, "")

	return env
}

// Path joins rel onto the environment root.
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.Root, filepath.FromSlash(rel))
}

// WriteFile writes content at rel, relative to the root.
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()
	path := env.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content at rel, failing the test if it is missing.
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()
	data, err := os.ReadFile(env.Path(rel))
	if err != nil {
		env.t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

// WriteTemplate creates template name under the template root rootRel with
// the given files (slash-separated paths relative to the template) and
// returns the template's directory.
func (env *TestEnvironment) WriteTemplate(rootRel, name string, files map[string]string) string {
	env.t.Helper()
	dir := filepath.Join(rootRel, name)
	if err := os.MkdirAll(env.Path(dir), 0755); err != nil {
		env.t.Fatalf("creating template %s: %v", name, err)
	}
	for rel, content := range files {
		env.WriteFile(filepath.Join(dir, rel), content)
	}
	return env.Path(dir)
}

// WriteLocalConfig writes scaffer.json into the project directory.
func (env *TestEnvironment) WriteLocalConfig(f config.File) string {
	env.t.Helper()
	path := filepath.Join(env.WorkDir, config.LocalJSON)
	if err := config.Write(path, f); err != nil {
		env.t.Fatalf("writing local config: %v", err)
	}
	return path
}

// WriteGlobalConfig writes the global config file.
func (env *TestEnvironment) WriteGlobalConfig(f config.File) {
	env.t.Helper()
	if err := config.Write(env.GlobalConfig, f); err != nil {
		env.t.Fatalf("writing global config: %v", err)
	}
}

// LoadConfig loads the configuration as seen from the project directory.
func (env *TestEnvironment) LoadConfig() *config.Config {
	env.t.Helper()
	cfg, err := config.Load(config.LoadOptions{WorkDir: env.WorkDir, GlobalPath: env.GlobalConfig})
	if err != nil {
		env.t.Fatalf("loading config: %v", err)
	}
	return cfg
}
