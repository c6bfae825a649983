package generator

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/filesystem"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/types"
	"github.com/arthur-debert/scaffer/pkg/variables"
)

const (
	// HookFile is reserved for template initialization scripts. It is never
	// copied.
	HookFile = "scaffer_init.py"

	gitDir = ".git"
)

// Entry is one directory or file of a template tree.
type Entry struct {
	// Rel is the slash separated path relative to the template root.
	Rel    string
	IsDir  bool
	Mode   fs.FileMode
	Data   []byte
	Binary bool
}

// Template is a template tree read into memory, with its placeholders
// recorded.
type Template struct {
	Root    string
	Prefix  casing.Prefix
	Entries []Entry
	HasHook bool

	discovery *variables.Discovery
}

// Load reads the whole template under root in lexical order and scans its
// names and text contents for placeholders. .git directories and the hook
// file are left out, and symlinks are skipped.
func Load(ctx context.Context, fsys types.FS, root string, prefix casing.Prefix) (*Template, error) {
	logger := logging.GetLogger("generator")

	info, err := fsys.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, errors.TemplateNotFound(root, []string{root})
	}

	t := &Template{
		Root:      root,
		Prefix:    prefix,
		discovery: variables.NewDiscovery(prefix),
	}
	if err := t.walk(ctx, fsys, ""); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", root).
		Int("entries", len(t.Entries)).
		Int("placeholders", t.discovery.Occurrences()).
		Msg("Template scanned")
	return t, nil
}

func (t *Template) walk(ctx context.Context, fsys types.FS, rel string) error {
	logger := logging.GetLogger("generator")

	dir := filepath.Join(t.Root, filepath.FromSlash(rel))
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "reading template directory %s", dir).
			WithDetail(errors.DetailPath, dir)
	}

	for _, de := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := de.Name()
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}
		path := filepath.Join(dir, name)

		switch {
		case de.Type()&fs.ModeSymlink != 0:
			logger.Warn().Str("path", childRel).Msg("Skipping symlink in template")
			continue
		case de.IsDir() && name == gitDir:
			continue
		case !de.IsDir() && name == HookFile && rel == "":
			logger.Info().Str("path", childRel).Msg("Template has an init hook; hooks are not run")
			t.HasHook = true
			continue
		}

		info, err := de.Info()
		if err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "reading %s", path).WithDetail(errors.DetailPath, path)
		}

		t.discovery.Scan(name)

		if de.IsDir() {
			t.Entries = append(t.Entries, Entry{Rel: childRel, IsDir: true, Mode: info.Mode().Perm()})
			if err := t.walk(ctx, fsys, childRel); err != nil {
				return err
			}
			continue
		}

		if !info.Mode().IsRegular() {
			logger.Warn().Str("path", childRel).Msg("Skipping special file in template")
			continue
		}

		data, err := fsys.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "reading %s", path).WithDetail(errors.DetailPath, path)
		}
		entry := Entry{Rel: childRel, Mode: info.Mode().Perm(), Data: data, Binary: !filesystem.IsText(data)}
		if !entry.Binary {
			t.discovery.Scan(string(data))
		}
		t.Entries = append(t.Entries, entry)
	}
	return nil
}

// Variables returns the variables the template uses, in the order they
// first appear. Names of supplied values help split placeholders whose
// word boundaries are ambiguous.
func (t *Template) Variables(supplied *variables.Binding) []casing.Name {
	return t.discovery.Names(supplied)
}

// Occurrences returns how many placeholders the scan found.
func (t *Template) Occurrences() int {
	return t.discovery.Occurrences()
}
