package add

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/scaffer/pkg/commands/internal"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/paths"
	"github.com/arthur-debert/scaffer/pkg/types"
)

// AddOptions holds options for the add command
type AddOptions struct {
	// Dir is the template root to register. Empty means WorkDir.
	Dir          string
	WorkDir      string
	GlobalConfig string
}

// Add registers a directory as a template root in the global config.
func Add(opts AddOptions) (*types.ActionResult, error) {
	logger := logging.GetLogger("commands.add")
	logger.Debug().Str("command", "Add").Str("dir", opts.Dir).Msg("Executing command")

	if opts.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrIOFailure, "getting working directory")
		}
		opts.WorkDir = wd
	}
	dir := opts.Dir
	if dir == "" {
		dir = opts.WorkDir
	}
	dir = paths.ExpandHome(dir)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(opts.WorkDir, dir)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "not a directory: %s", dir).WithDetail(errors.DetailPath, dir)
	}

	session, err := internal.Open(internal.SessionOptions{WorkDir: opts.WorkDir, GlobalConfig: opts.GlobalConfig})
	if err != nil {
		return nil, err
	}
	cfg := session.Config

	changed, err := cfg.AddTemplateRoot(dir)
	if err != nil {
		return nil, err
	}
	result := &types.ActionResult{
		Command: "add",
		Path:    cfg.Global.Path,
		Changed: changed,
		Items:   cfg.Global.File.Templates,
	}
	if !changed {
		result.Message = "Directory is already a template root"
		return result, nil
	}
	if err := cfg.SaveGlobal(); err != nil {
		return nil, err
	}
	result.Message = "Added directory as template root"

	logger.Info().Str("command", "Add").Str("config", cfg.Global.Path).Msg("Command finished")
	return result, nil
}
