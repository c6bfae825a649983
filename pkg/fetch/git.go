package fetch

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// shallowClone clones the default branch of url into dest with depth 1.
func shallowClone(ctx context.Context, url, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:          url,
		Auth:         gitAuth(url),
		SingleBranch: true,
		Depth:        1,
	})
	if err != nil {
		_ = os.RemoveAll(dest)
	}
	return err
}

// gitAuth picks credentials from the environment. Public HTTPS remotes
// need none.
func gitAuth(url string) transport.AuthMethod {
	if IsSSH(url) {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		for _, key := range []string{"id_ed25519", "id_rsa", "id_ecdsa"} {
			path := filepath.Join(home, ".ssh", key)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if auth, err := ssh.NewPublicKeysFromFile("git", path, ""); err == nil {
				return auth
			}
		}
		return nil
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return &http.BasicAuth{Username: "x-access-token", Password: token}
	}
	if token := os.Getenv("GIT_TOKEN"); token != "" {
		return &http.BasicAuth{Username: "git", Password: token}
	}
	return nil
}

// IsSSH reports whether a git url uses the ssh transport.
func IsSSH(url string) bool {
	ep, err := transport.NewEndpoint(cloneURL(url))
	return err == nil && ep.Protocol == "ssh"
}
