package fetch

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/filesystem"
	"github.com/arthur-debert/scaffer/pkg/generator"
	"github.com/arthur-debert/scaffer/pkg/placeholder"
)

// maxProbeSize bounds how much of a file is read while probing for
// placeholders.
const maxProbeSize = 1 << 20

// FindRoot picks the template directory inside an unpacked archive: dir
// itself if it looks like a template, else the first subdirectory that
// does, else the first subdirectory, else dir.
func FindRoot(dir string, prefix casing.Prefix) (string, error) {
	ok, err := looksLikeTemplate(dir, prefix)
	if err != nil {
		return "", err
	}
	if ok {
		return dir, nil
	}

	subdirs, err := subdirectories(dir)
	if err != nil {
		return "", err
	}
	for _, sub := range subdirs {
		if ok, err := looksLikeTemplate(sub, prefix); err == nil && ok {
			return sub, nil
		}
	}
	if len(subdirs) > 0 {
		return subdirs[0], nil
	}
	return dir, nil
}

// looksLikeTemplate holds for a directory with a hook file, a placeholder
// in an entry name or a file's text, or more than one entry.
func looksLikeTemplate(dir string, prefix casing.Prefix) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrIOFailure, "reading %s", dir).WithDetail(errors.DetailPath, dir)
	}
	if len(entries) == 0 {
		return false, nil
	}

	for _, e := range entries {
		if e.Name() == generator.HookFile {
			return true, nil
		}
	}
	for _, e := range entries {
		if placeholder.Contains(e.Name(), prefix) {
			return true, nil
		}
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if info, err := e.Info(); err != nil || info.Size() > maxProbeSize {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil || !filesystem.IsText(data) {
			continue
		}
		if placeholder.Contains(string(data), prefix) {
			return true, nil
		}
	}
	return len(entries) > 1, nil
}

func subdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "reading %s", dir).WithDetail(errors.DetailPath, dir)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}
