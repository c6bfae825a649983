package gitignore

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/filesystem"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/types"
)

// FileName is the file written by the command.
const FileName = ".gitignore"

// Content is the standard ignore list.
const Content = `# Dependencies
node_modules/
target/
dist/
build/

# Environment variables
.env
.env.local
.env.*.local

# IDE
.vscode/
.idea/
*.swp
*.swo

# OS
.DS_Store
Thumbs.db

# Logs
*.log
logs/

# Cache
.cache/
*.tmp
*.temp
`

// GitignoreOptions holds options for the gitignore command
type GitignoreOptions struct {
	Dir string
	// Force replaces an existing .gitignore.
	Force      bool
	FileSystem types.FS
}

// Gitignore writes the standard .gitignore into Dir.
func Gitignore(opts GitignoreOptions) (*types.ActionResult, error) {
	logger := logging.GetLogger("commands.gitignore")
	logger.Debug().Str("command", "Gitignore").Str("dir", opts.Dir).Bool("force", opts.Force).Msg("Executing command")

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

	path := filepath.Join(opts.Dir, FileName)
	result := &types.ActionResult{Command: "gitignore", Path: path}

	existing, err := fsys.ReadFile(path)
	switch {
	case err == nil && string(existing) == Content:
		result.Message = FileName + " is up to date"
		return result, nil
	case err == nil && !opts.Force:
		return nil, errors.Newf(errors.ErrAlreadyExists, "%s already exists, use --force to replace it", path).
			WithDetail(errors.DetailPath, path)
	}

	if err := filesystem.WriteFileAtomic(fsys, path, []byte(Content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "writing %s", path).WithDetail(errors.DetailPath, path)
	}
	result.Changed = true
	result.Message = "Created " + FileName + " file"

	logger.Info().Str("command", "Gitignore").Str("path", path).Msg("Command finished")
	return result, nil
}
