package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/config"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/types"
	"github.com/arthur-debert/scaffer/pkg/ui/prompt"
)

const defaultTemplateDir = "templates"

// SetupOptions holds options for the setup command
type SetupOptions struct {
	WorkDir string
	// TOML writes scaffer.toml instead of scaffer.json.
	TOML  bool
	Asker prompt.Asker
}

// Setup asks for template directories and template URLs and writes them as
// the local config of WorkDir.
func Setup(ctx context.Context, opts SetupOptions) (*types.ActionResult, error) {
	logger := logging.GetLogger("commands.setup")
	logger.Debug().Str("command", "Setup").Bool("toml", opts.TOML).Msg("Executing command")

	if opts.Asker == nil {
		return nil, errors.New(errors.ErrInvalidInput, "setup needs answers; run it from a terminal or pipe them in")
	}
	if opts.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrIOFailure, "getting working directory")
		}
		opts.WorkDir = wd
	}
	name := config.LocalJSON
	if opts.TOML {
		name = config.LocalTOML
	}
	path := filepath.Join(opts.WorkDir, name)
	result := &types.ActionResult{Command: "setup", Path: path}

	if config.Exists(path) {
		overwrite, err := opts.Asker.Confirm(ctx, fmt.Sprintf("%s already exists. Overwrite it?", name), false)
		if err != nil {
			return nil, err
		}
		if !overwrite {
			result.Message = "Kept existing " + name
			return result, nil
		}
	}

	var file config.File
	dirs, err := opts.Asker.Input(ctx, "Enter template directories (comma-separated)", defaultTemplateDir)
	if err != nil {
		return nil, err
	}
	file.Templates = splitList(dirs)

	withURLs, err := opts.Asker.Confirm(ctx, "Do you want to configure template URLs?", false)
	if err != nil {
		return nil, err
	}
	if withURLs {
		if file.TemplateURLs, err = askURLs(ctx, opts.Asker); err != nil {
			return nil, err
		}
	}

	if err := config.Write(path, file); err != nil {
		return nil, err
	}
	result.Changed = true
	result.Message = fmt.Sprintf("Created %s configuration file", name)
	result.Items = file.Templates

	logger.Info().Str("command", "Setup").Str("path", path).Int("templateDirs", len(file.Templates)).Int("urls", len(file.TemplateURLs)).Msg("Command finished")
	return result, nil
}

// askURLs collects name/URL pairs until an empty name is given.
func askURLs(ctx context.Context, asker prompt.Asker) (map[string]string, error) {
	urls := map[string]string{}
	for {
		name, err := asker.Input(ctx, "Template name (empty to finish)", "")
		if err != nil {
			return nil, err
		}
		if name == "" {
			return urls, nil
		}
		url, err := asker.Input(ctx, "Template URL", "")
		if err != nil {
			return nil, err
		}
		if url == "" {
			continue
		}
		if !config.IsURL(url) {
			return nil, errors.Newf(errors.ErrInvalidInput, "not a template URL: %s", url)
		}
		urls[name] = url
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
