package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/internal/hashutil"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// MaxParallel bounds concurrent downloads in FetchAll.
const MaxParallel = 4

// Fetcher downloads templates into CacheDir.
type Fetcher struct {
	CacheDir string
	// Prefix is used by root detection. Zero means the default.
	Prefix casing.Prefix
	HTTP   *retryablehttp.Client
	// Clone fetches git remotes into a directory. Defaults to a shallow
	// go-git clone.
	Clone func(ctx context.Context, url, dest string) error
	// OnFetch, when set, is called before each download or clone starts.
	// FetchAll calls it from several goroutines.
	OnFetch func(url string)
}

// New returns a Fetcher with a retrying HTTP client that logs through
// zerolog.
func New(cacheDir string, prefix casing.Prefix) *Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 250 * time.Millisecond
	client.RetryWaitMax = 3 * time.Second
	client.Logger = leveledLogger{logging.GetLogger("fetch.http")}

	return &Fetcher{
		CacheDir: cacheDir,
		Prefix:   prefix,
		HTTP:     client,
		Clone:    shallowClone,
	}
}

// CachePath is the directory a URL is unpacked into.
func (f *Fetcher) CachePath(url string) string {
	return filepath.Join(f.CacheDir, hashutil.Key(url))
}

// Cached returns the template root of a previous fetch of url.
func (f *Fetcher) Cached(url string) (string, bool) {
	dir := f.CachePath(url)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", false
	}
	root, err := FindRoot(dir, f.prefix())
	if err != nil {
		return "", false
	}
	return root, true
}

// FetchAndUnpack downloads url into the cache, replacing any previous copy,
// and returns the template root inside it.
func (f *Fetcher) FetchAndUnpack(ctx context.Context, url string) (string, error) {
	logger := logging.GetLogger("fetch")
	defer logging.LogOperationStart(logger, "fetch")()

	if err := os.MkdirAll(f.CacheDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrIOFailure, "creating cache %s", f.CacheDir).
			WithDetail(errors.DetailPath, f.CacheDir)
	}

	// Unpack next to the final location so a failed fetch keeps the old copy.
	staging := filepath.Join(f.CacheDir, ".staging-"+uuid.New().String())
	defer func() { _ = os.RemoveAll(staging) }()

	if f.OnFetch != nil {
		f.OnFetch(url)
	}
	if IsGitURL(url) {
		logger.Info().Str("url", url).Msg("Cloning template")
		if err := f.clone()(ctx, cloneURL(url), staging); err != nil {
			return "", fetchError(err, url, "cloning")
		}
		_ = os.RemoveAll(filepath.Join(staging, ".git"))
	} else {
		logger.Info().Str("url", url).Msg("Downloading template")
		if err := f.download(ctx, url, staging); err != nil {
			return "", err
		}
	}

	dest := f.CachePath(url)
	if err := os.RemoveAll(dest); err != nil {
		return "", errors.Wrapf(err, errors.ErrIOFailure, "clearing %s", dest).WithDetail(errors.DetailPath, dest)
	}
	if err := os.Rename(staging, dest); err != nil {
		return "", errors.Wrapf(err, errors.ErrIOFailure, "moving template into %s", dest).WithDetail(errors.DetailPath, dest)
	}

	root, err := FindRoot(dest, f.prefix())
	if err != nil {
		return "", err
	}
	logger.Debug().Str("url", url).Str("root", root).Msg("Template unpacked")
	return root, nil
}

func (f *Fetcher) download(ctx context.Context, url, dest string) error {
	client := f.HTTP
	if client == nil {
		client = retryablehttp.NewClient()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fetchError(err, url, "building request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return fetchError(err, url, "downloading")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.ErrFetchFailed, "downloading %s: HTTP %d", url, resp.StatusCode).
			WithDetail(errors.DetailURL, url).
			WithDetail("status", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(f.CacheDir, ".download-*.zip")
	if err != nil {
		return errors.Wrap(err, errors.ErrIOFailure, "creating download file")
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return fetchError(err, url, "reading response")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, errors.ErrIOFailure, "writing download file")
	}

	if err := Unzip(tmp.Name(), dest); err != nil {
		return errors.Wrapf(err, errors.ErrFetchFailed, "unpacking %s", url).WithDetail(errors.DetailURL, url)
	}
	return nil
}

// Result is the outcome of fetching one URL.
type Result struct {
	URL  string
	Root string
	Err  error
}

// FetchAll fetches every URL in parallel. A failure only affects its own
// entry. It returns once every fetch has finished.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) map[string]Result {
	results := make(map[string]Result, len(urls))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(MaxParallel)
	for _, url := range urls {
		g.Go(func() error {
			root, err := f.FetchAndUnpack(ctx, url)
			mu.Lock()
			results[url] = Result{URL: url, Root: root, Err: err}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (f *Fetcher) prefix() casing.Prefix {
	if f.Prefix.IsZero() {
		return casing.Default()
	}
	return f.Prefix
}

func (f *Fetcher) clone() func(ctx context.Context, url, dest string) error {
	if f.Clone == nil {
		return shallowClone
	}
	return f.Clone
}

// IsGitURL reports whether url names a git remote rather than an archive.
func IsGitURL(url string) bool {
	switch {
	case strings.HasPrefix(url, "git@"),
		strings.HasPrefix(url, "git+"),
		strings.HasPrefix(url, "ssh://"),
		strings.HasPrefix(url, "git://"):
		return true
	}
	return strings.HasSuffix(strings.TrimSuffix(url, "/"), ".git")
}

func cloneURL(url string) string {
	return strings.TrimPrefix(url, "git+")
}

func fetchError(err error, url, action string) error {
	return errors.Wrapf(err, errors.ErrFetchFailed, "%s %s", action, url).WithDetail(errors.DetailURL, url)
}

// leveledLogger routes retryablehttp's logging into zerolog.
type leveledLogger struct {
	logger zerolog.Logger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.log(l.logger.Error(), msg, kv) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.log(l.logger.Warn(), msg, kv) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.log(l.logger.Debug(), msg, kv) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.log(l.logger.Trace(), msg, kv) }

func (l leveledLogger) log(ev *zerolog.Event, msg string, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		ev = ev.Interface(fmt.Sprint(kv[i]), kv[i+1])
	}
	ev.Msg(msg)
}
