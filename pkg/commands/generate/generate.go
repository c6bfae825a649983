package generate

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/scaffer/pkg/commands/internal"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/fetch"
	"github.com/arthur-debert/scaffer/pkg/generator"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/types"
	"github.com/arthur-debert/scaffer/pkg/variables"
)

// GenerateOptions holds options for the generate command
type GenerateOptions struct {
	// Template is a template name, a directory or a URL.
	Template string
	// WorkDir is where config lookup starts. Defaults to the process
	// working directory.
	WorkDir string
	// Destination defaults to WorkDir.
	Destination  string
	GlobalConfig string
	// Variables are raw `key=value` assignments.
	Variables []string
	Prefix    string
	// Prompter asks for missing values. Nil makes the run non-interactive.
	Prompter variables.Prompter
	Force    bool
	DryRun   bool
	// Refresh fetches remote templates even when cached.
	Refresh bool
	// Fetcher overrides the default remote template fetcher.
	Fetcher *fetch.Fetcher
	// OnFetch is called when a remote template starts downloading.
	OnFetch func(url string)
	// FileSystem for the template and destination trees. Defaults to the OS.
	FileSystem types.FS
}

// Generate renders a template into the destination directory.
func Generate(ctx context.Context, opts GenerateOptions) (*types.GenerateResult, error) {
	logger := logging.GetLogger("commands.generate")
	logger.Debug().Str("command", "Generate").Str("template", opts.Template).Msg("Executing command")

	if opts.Template == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no template given")
	}
	if opts.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrIOFailure, "getting working directory")
		}
		opts.WorkDir = wd
	}
	dest := opts.Destination
	if dest == "" {
		dest = opts.WorkDir
	} else if !filepath.IsAbs(dest) {
		dest = filepath.Join(opts.WorkDir, dest)
	}

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

	supplied, err := variables.ParseAssignments(opts.Variables, session.Prefix)
	if err != nil {
		return nil, err
	}

	loc, root, err := session.Template(ctx, opts.Template, opts.Refresh)
	if err != nil {
		return nil, err
	}

	result, err := generator.Generate(ctx, generator.Options{
		TemplateName: loc.Name,
		TemplateRoot: root,
		Destination:  dest,
		Prefix:       session.Prefix,
		Supplied:     supplied,
		Prompter:     opts.Prompter,
		Force:        opts.Force,
		DryRun:       opts.DryRun,
		FileSystem:   opts.FileSystem,
	})
	if err != nil {
		return result, err
	}

	logger.Info().
		Str("command", "Generate").
		Str("template", loc.Name).
		Bool("dryRun", opts.DryRun).
		Int("files", len(result.Paths())).
		Int("conflicts", len(result.Conflicts())).
		Msg("Command finished")
	return result, nil
}
