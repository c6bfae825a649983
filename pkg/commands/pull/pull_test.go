// pkg/commands/pull/pull_test.go
// TEST TYPE: Command Integration
// DEPENDENCIES: Temp dir environment, httptest
// PURPOSE: Refreshing the remote template cache

package pull_test

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/scaffer/pkg/commands/pull"
	"github.com/arthur-debert/scaffer/pkg/config"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zipServer(t *testing.T) *httptest.Server {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("repo-main/scf_name.txt")
	require.NoError(t, err)
	_, _ = f.Write([]byte("scf-name\n"))
	require.NoError(t, w.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.zip" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPull_AllConfigured(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	srv := zipServer(t)
	env.WriteGlobalConfig(config.File{TemplateURLs: map[string]string{
		"beta":  srv.URL + "/b.zip",
		"alpha": srv.URL + "/a.zip",
	}})

	result, err := pull.Pull(context.Background(), pull.PullOptions{WorkDir: env.WorkDir})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "alpha", result.Items[0].Name)
	assert.Equal(t, "beta", result.Items[1].Name)
	for _, it := range result.Items {
		assert.Empty(t, it.Error)
		assert.FileExists(t, filepath.Join(it.Root, "scf_name.txt"))
	}
	assert.Empty(t, result.Failed())
}

func TestPull_PartialFailure(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	srv := zipServer(t)
	env.WriteGlobalConfig(config.File{TemplateURLs: map[string]string{
		"good": srv.URL + "/good.zip",
		"gone": srv.URL + "/missing.zip",
	}})

	result, err := pull.Pull(context.Background(), pull.PullOptions{WorkDir: env.WorkDir})
	require.NoError(t, err)
	failed := result.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "gone", failed[0].Name)
	assert.NotEmpty(t, failed[0].Error)
}

func TestPull_AllFailed(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	srv := zipServer(t)

	result, err := pull.Pull(context.Background(), pull.PullOptions{
		Names:   []string{srv.URL + "/missing.zip"},
		WorkDir: env.WorkDir,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFetchFailed))
	require.Len(t, result.Items, 1)
}

func TestPull_Names(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	srv := zipServer(t)
	env.WriteTemplate("project/templates", "local", map[string]string{"a.txt": ""})
	env.WriteLocalConfig(config.File{
		Templates:    []string{"templates"},
		TemplateURLs: map[string]string{"remote": srv.URL + "/r.zip"},
	})

	result, err := pull.Pull(context.Background(), pull.PullOptions{Names: []string{"remote", "remote"}, WorkDir: env.WorkDir})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)

	_, err = pull.Pull(context.Background(), pull.PullOptions{Names: []string{"local"}, WorkDir: env.WorkDir})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = pull.Pull(context.Background(), pull.PullOptions{Names: []string{"unknown"}, WorkDir: env.WorkDir})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
}

func TestPull_NothingConfigured(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	result, err := pull.Pull(context.Background(), pull.PullOptions{WorkDir: env.WorkDir})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}
