package show

import (
	"context"

	"github.com/arthur-debert/scaffer/pkg/commands/internal"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/filesystem"
	"github.com/arthur-debert/scaffer/pkg/generator"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/types"
)

// readmeNames are checked in order; the first one present is shown.
var readmeNames = []string{"README.md", "readme.md", "README"}

// ShowOptions holds options for the show command
type ShowOptions struct {
	Template     string
	WorkDir      string
	GlobalConfig string
	Prefix       string
	Refresh      bool
	// OnFetch is called when a remote template starts downloading.
	OnFetch func(url string)
}

// Show scans a template and reports the variables generate would ask for.
func Show(ctx context.Context, opts ShowOptions) (*types.ShowResult, error) {
	logger := logging.GetLogger("commands.show")
	logger.Debug().Str("command", "Show").Str("template", opts.Template).Msg("Executing command")

	if opts.Template == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no template given")
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

	loc, root, err := session.Template(ctx, opts.Template, opts.Refresh)
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	tmpl, err := generator.Load(ctx, fsys, root, session.Prefix)
	if err != nil {
		return nil, err
	}

	result := &types.ShowResult{
		Template:    loc.Name,
		Path:        root,
		Prefix:      session.Prefix.String(),
		Variables:   []string{},
		Entries:     len(tmpl.Entries),
		Occurrences: tmpl.Occurrences(),
		HasHook:     tmpl.HasHook,
	}
	for _, name := range tmpl.Variables(nil) {
		result.Variables = append(result.Variables, name.Kebab())
	}
	result.Readme = readme(tmpl)

	logger.Info().Str("command", "Show").Str("template", loc.Name).Int("variables", len(result.Variables)).Msg("Command finished")
	return result, nil
}

func readme(tmpl *generator.Template) string {
	for _, name := range readmeNames {
		for _, e := range tmpl.Entries {
			if e.Rel == name && !e.IsDir && !e.Binary {
				return string(e.Data)
			}
		}
	}
	return ""
}
