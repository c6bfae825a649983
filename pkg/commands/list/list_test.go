// pkg/commands/list/list_test.go
// TEST TYPE: Command Integration
// DEPENDENCIES: Temp dir environment
// PURPOSE: Template listing across local, global and remote sources

package list_test

import (
	"testing"

	"github.com/arthur-debert/scaffer/pkg/commands/list"
	"github.com/arthur-debert/scaffer/pkg/config"
	"github.com/arthur-debert/scaffer/pkg/testutil"
	"github.com/arthur-debert/scaffer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Empty(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	result, err := list.List(list.ListOptions{WorkDir: env.WorkDir})
	require.NoError(t, err)
	assert.Empty(t, result.Templates)
	assert.Empty(t, result.Roots)
}

func TestList_AllSources(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteTemplate("project/templates", "cli", map[string]string{"main.go": "package main"})
	env.WriteTemplate("project/templates", "lib", map[string]string{"lib.go": "package scf_pkg"})
	env.WriteTemplate("home/shared", "lib", map[string]string{"other.go": ""})
	env.WriteTemplate("home/shared", "web", map[string]string{"index.html": ""})
	env.WriteLocalConfig(config.File{Templates: []string{"templates"}})
	env.WriteGlobalConfig(config.File{
		Templates:    []string{env.Path("home/shared")},
		TemplateURLs: map[string]string{"api": "https://example.com/api.zip"},
	})

	result, err := list.List(list.ListOptions{WorkDir: env.WorkDir})
	require.NoError(t, err)

	assert.Equal(t, []string{env.Path("project/templates"), env.Path("home/shared")}, result.Roots)
	assert.Equal(t, []types.TemplateInfo{
		{Name: "api", URL: "https://example.com/api.zip"},
		{Name: "cli", Path: env.Path("project/templates/cli")},
		{Name: "lib", Path: env.Path("project/templates/lib")},
		{Name: "web", Path: env.Path("home/shared/web")},
	}, result.Templates)
}

func TestList_MalformedConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteFile("project/scaffer.json", "{not json")

	_, err := list.List(list.ListOptions{WorkDir: env.WorkDir})
	assert.Error(t, err)
}
