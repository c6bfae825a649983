package pull

import (
	"context"
	"sort"

	"github.com/arthur-debert/scaffer/pkg/commands/internal"
	"github.com/arthur-debert/scaffer/pkg/config"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/fetch"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/types"
)

// PullOptions holds options for the pull command
type PullOptions struct {
	// Names are configured template names or URLs. Empty pulls every
	// configured remote template.
	Names        []string
	WorkDir      string
	GlobalConfig string
	Prefix       string
	// Fetcher overrides the default remote template fetcher.
	Fetcher *fetch.Fetcher
	// OnFetch is called as each download starts.
	OnFetch func(url string)
}

// Pull downloads remote templates into the cache, replacing what was
// cached before. Failures are reported per template; the command only
// errors when nothing could be pulled.
func Pull(ctx context.Context, opts PullOptions) (*types.PullResult, error) {
	logger := logging.GetLogger("commands.pull")
	logger.Debug().Str("command", "Pull").Strs("names", opts.Names).Msg("Executing command")

	session, err := internal.Open(internal.SessionOptions{
		WorkDir:      opts.WorkDir,
		GlobalConfig: opts.GlobalConfig,
		Prefix:       opts.Prefix,
		OnFetch:      opts.OnFetch,
	})
	if err != nil {
		return nil, err
	}
	if opts.Fetcher != nil {
		session.SetFetcher(opts.Fetcher)
	}

	targets, err := targets(session.Config, opts.Names)
	if err != nil {
		return nil, err
	}
	result := &types.PullResult{Items: []types.PullItem{}}
	if len(targets) == 0 {
		return result, nil
	}

	urls := make([]string, 0, len(targets))
	for _, t := range targets {
		urls = append(urls, t.URL)
	}
	fetched := session.Fetcher().FetchAll(ctx, urls)

	for _, t := range targets {
		r := fetched[t.URL]
		item := types.PullItem{Name: t.Name, URL: t.URL, Root: r.Root}
		if r.Err != nil {
			item.Error = r.Err.Error()
			logger.Warn().Err(r.Err).Str("url", t.URL).Msg("Pull failed")
		}
		result.Items = append(result.Items, item)
	}

	failed := len(result.Failed())
	logger.Info().Str("command", "Pull").Int("pulled", len(result.Items)-failed).Int("failed", failed).Msg("Command finished")
	if failed == len(result.Items) {
		return result, errors.Newf(errors.ErrFetchFailed, "no template could be pulled (%d failed)", failed)
	}
	return result, nil
}

// targets resolves names to remote locations, in name order when all
// configured templates are pulled.
func targets(cfg *config.Config, names []string) ([]config.Location, error) {
	if len(names) == 0 {
		urls := cfg.TemplateURLs()
		out := make([]config.Location, 0, len(urls))
		for name, url := range urls {
			out = append(out, config.Location{Name: name, URL: url})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, nil
	}

	seen := map[string]bool{}
	var out []config.Location
	for _, name := range names {
		loc, err := cfg.Locate(name)
		if err != nil {
			return nil, err
		}
		if !loc.Remote() {
			return nil, errors.Newf(errors.ErrInvalidInput, "%s is a local template; only remote templates can be pulled", name).
				WithDetail(errors.DetailTemplate, name)
		}
		if seen[loc.URL] {
			continue
		}
		seen[loc.URL] = true
		out = append(out, loc)
	}
	return out, nil
}
