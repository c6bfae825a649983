package barrel

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/filesystem"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/types"
)

// IndexFile is the barrel file written into the directory.
const IndexFile = "index.ts"

// BarrelOptions holds options for the barrel command
type BarrelOptions struct {
	// Dir defaults to the process working directory.
	Dir        string
	DryRun     bool
	FileSystem types.FS
}

// Barrel writes an index.ts that re-exports every TypeScript module and
// subdirectory directly under Dir. Hidden entries are left out.
func Barrel(opts BarrelOptions) (*types.ActionResult, error) {
	logger := logging.GetLogger("commands.barrel")
	logger.Debug().Str("command", "Barrel").Str("dir", opts.Dir).Msg("Executing command")

	if opts.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrIOFailure, "getting working directory")
		}
		opts.Dir = wd
	}
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	entries, err := fsys.ReadDir(opts.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "reading %s", opts.Dir).WithDetail(errors.DetailPath, opts.Dir)
	}

	var modules []string
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasPrefix(name, "."):
		case e.IsDir():
			modules = append(modules, name)
		case strings.HasSuffix(name, ".ts") && name != IndexFile && !strings.HasSuffix(name, ".d.ts"):
			modules = append(modules, strings.TrimSuffix(name, ".ts"))
		}
	}
	sort.Strings(modules)

	path := filepath.Join(opts.Dir, IndexFile)
	content := Render(modules)
	result := &types.ActionResult{Command: "barrel", Path: path, Items: modules}

	if existing, err := fsys.ReadFile(path); err == nil && string(existing) == content {
		result.Message = IndexFile + " is up to date"
		return result, nil
	}
	result.Changed = true
	if opts.DryRun {
		result.Message = "Would write " + IndexFile + " barrel file"
		return result, nil
	}
	if err := filesystem.WriteFileAtomic(fsys, path, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "writing %s", path).WithDetail(errors.DetailPath, path)
	}
	result.Message = "Created " + IndexFile + " barrel file"

	logger.Info().Str("command", "Barrel").Str("path", path).Int("exports", len(modules)).Msg("Command finished")
	return result, nil
}

// Render returns the barrel content for the given module names.
func Render(modules []string) string {
	var b strings.Builder
	for _, m := range modules {
		b.WriteString("export * from './")
		b.WriteString(m)
		b.WriteString("';\n")
	}
	return b.String()
}
