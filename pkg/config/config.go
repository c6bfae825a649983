package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/paths"
)

// TemplateRoots returns the directories searched for templates: the local
// config's roots first, then SCAFFER_TEMPLATES, then the global config's.
// Duplicates keep their first position.
func (c *Config) TemplateRoots() []string {
	var roots []string
	seen := make(map[string]bool)
	add := func(base string, dirs []string) {
		for _, d := range dirs {
			d = resolve(base, d)
			if d == "" || seen[d] {
				continue
			}
			seen[d] = true
			roots = append(roots, d)
		}
	}

	if c.Local != nil {
		add(c.Local.Dir(), c.Local.File.Templates)
	}
	add(c.WorkDir, c.EnvRoots)
	if c.Global != nil && c.Global.Found {
		add(c.Global.Dir(), c.Global.File.Templates)
	}
	return roots
}

// TemplateURLs returns the named remote templates. Local names override
// global ones.
func (c *Config) TemplateURLs() map[string]string {
	urls := make(map[string]string)
	if c.Global != nil {
		for name, url := range c.Global.File.TemplateURLs {
			urls[name] = url
		}
	}
	if c.Local != nil {
		for name, url := range c.Local.File.TemplateURLs {
			urls[name] = url
		}
	}
	return urls
}

// Prefix returns the configured placeholder prefix, local first. An empty
// string means none was configured.
func (c *Config) Prefix() string {
	if c.Local != nil && c.Local.File.Prefix != "" {
		return c.Local.File.Prefix
	}
	if c.Global != nil {
		return c.Global.File.Prefix
	}
	return ""
}

// PlaceholderPrefix parses Prefix, falling back to the default.
func (c *Config) PlaceholderPrefix() (casing.Prefix, error) {
	p := c.Prefix()
	if p == "" {
		return casing.Default(), nil
	}
	prefix, err := casing.NewPrefix(p)
	if err != nil {
		return casing.Prefix{}, errors.Wrapf(err, errors.ErrConfigParse, "invalid scaffer_prefix %q", p)
	}
	return prefix, nil
}

// Templates lists every template name: the subdirectories of each root and
// the configured URL names, sorted and without duplicates.
func (c *Config) Templates() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, root := range c.TemplateRoots() {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
				add(e.Name())
			}
		}
	}
	for name := range c.TemplateURLs() {
		add(name)
	}
	sort.Strings(names)
	return names
}

// Location is where a template lives.
type Location struct {
	Name string
	// Path is set for local templates.
	Path string
	// URL is set for remote ones.
	URL string
}

// Remote reports whether the template must be fetched first.
func (l Location) Remote() bool {
	return l.URL != ""
}

// Locate resolves a template argument. In order: an existing directory, a
// URL, a configured URL name, a directory under one of the roots.
func (c *Config) Locate(name string) (Location, error) {
	if name == "" {
		return Location{}, errors.New(errors.ErrInvalidInput, "template name is required")
	}

	direct := resolve(c.WorkDir, name)
	if info, err := os.Stat(direct); err == nil && info.IsDir() {
		return Location{Name: name, Path: direct}, nil
	}

	if IsURL(name) {
		return Location{Name: name, URL: name}, nil
	}

	if url, ok := c.TemplateURLs()[name]; ok {
		return Location{Name: name, URL: url}, nil
	}

	roots := c.TemplateRoots()
	for _, root := range roots {
		candidate := filepath.Join(root, name)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return Location{Name: name, Path: candidate}, nil
		}
	}
	return Location{}, errors.TemplateNotFound(name, roots)
}

// IsURL reports whether s looks like something fetch can download.
func IsURL(s string) bool {
	for _, scheme := range []string{"http://", "https://", "git@", "git+https://", "git+ssh://", "ssh://"} {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return false
}

// AddTemplateRoot appends dir to the global config, unless it is already
// there. It reports whether the config changed; the caller saves it.
func (c *Config) AddTemplateRoot(dir string) (bool, error) {
	abs, err := filepath.Abs(paths.ExpandHome(dir))
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrInvalidInput, "resolving %s", dir)
	}
	if c.Global == nil {
		c.Global = &Source{Path: paths.New("").GlobalConfigPath()}
	}
	for _, existing := range c.Global.File.Templates {
		if resolve(c.Global.Dir(), existing) == abs {
			return false, nil
		}
	}
	c.Global.File.Templates = append(c.Global.File.Templates, abs)
	return true, nil
}

// SaveGlobal writes the global config back to its file.
func (c *Config) SaveGlobal() error {
	if c.Global == nil {
		return errors.New(errors.ErrInternal, "no global config loaded")
	}
	if err := Write(c.Global.Path, c.Global.File); err != nil {
		return err
	}
	c.Global.Found = true
	return nil
}

func resolve(base, dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ""
	}
	dir = paths.ExpandHome(dir)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}
	return filepath.Clean(dir)
}
