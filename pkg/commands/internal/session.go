// Package internal holds what every command needs before it can do its
// own work: the loaded configuration, the placeholder prefix and a way to
// turn a template argument into a directory on disk.
package internal

import (
	"context"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/config"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/fetch"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/paths"
)

// SessionOptions are the inputs shared by all commands.
type SessionOptions struct {
	// WorkDir is where the local config search starts. Empty means the
	// process working directory.
	WorkDir string
	// GlobalConfig overrides the global config file.
	GlobalConfig string
	// Prefix overrides the configured placeholder prefix.
	Prefix string
	// OnFetch is passed to the fetcher, to report downloads as they start.
	OnFetch func(url string)
}

// Session is the state a command runs against.
type Session struct {
	Config *config.Config
	Prefix casing.Prefix
	Paths  *paths.Paths

	fetcher *fetch.Fetcher
	onFetch func(url string)
}

// Open loads the configuration and settles the prefix.
func Open(opts SessionOptions) (*Session, error) {
	cfg, err := config.Load(config.LoadOptions{WorkDir: opts.WorkDir, GlobalPath: opts.GlobalConfig})
	if err != nil {
		return nil, err
	}

	var prefix casing.Prefix
	if opts.Prefix != "" {
		prefix, err = casing.NewPrefix(opts.Prefix)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid prefix %q", opts.Prefix)
		}
	} else if prefix, err = cfg.PlaceholderPrefix(); err != nil {
		return nil, err
	}

	return &Session{Config: cfg, Prefix: prefix, Paths: paths.New(""), onFetch: opts.OnFetch}, nil
}

// Fetcher returns the fetcher for remote templates, creating it on first
// use.
func (s *Session) Fetcher() *fetch.Fetcher {
	if s.fetcher == nil {
		s.fetcher = fetch.New(s.Paths.TemplateCacheDir(), s.Prefix)
		s.fetcher.OnFetch = s.onFetch
	}
	return s.fetcher
}

// SetFetcher replaces the fetcher, for tests.
func (s *Session) SetFetcher(f *fetch.Fetcher) {
	s.fetcher = f
}

// Template resolves a template argument to a directory. Remote templates
// come from the cache unless refresh is set or they were never fetched.
func (s *Session) Template(ctx context.Context, name string, refresh bool) (config.Location, string, error) {
	logger := logging.GetLogger("commands")

	loc, err := s.Config.Locate(name)
	if err != nil {
		return loc, "", err
	}
	if !loc.Remote() {
		return loc, loc.Path, nil
	}

	f := s.Fetcher()
	if !refresh {
		if root, ok := f.Cached(loc.URL); ok {
			logger.Debug().Str("url", loc.URL).Str("root", root).Msg("Using cached template")
			return loc, root, nil
		}
	}
	root, err := f.FetchAndUnpack(ctx, loc.URL)
	if err != nil {
		return loc, "", err
	}
	return loc, root, nil
}
