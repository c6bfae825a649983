package list

import (
	"github.com/arthur-debert/scaffer/pkg/commands/internal"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	// WorkDir is where config lookup starts.
	WorkDir      string
	GlobalConfig string
}

// List returns every template reachable from the working directory, the
// same names generate accepts.
func List(opts ListOptions) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "List").Msg("Executing command")

	session, err := internal.Open(internal.SessionOptions{WorkDir: opts.WorkDir, GlobalConfig: opts.GlobalConfig})
	if err != nil {
		return nil, err
	}
	cfg := session.Config

	result := &types.ListResult{
		Roots:     cfg.TemplateRoots(),
		Templates: []types.TemplateInfo{},
	}
	for _, name := range cfg.Templates() {
		loc, err := cfg.Locate(name)
		if err != nil {
			log.Debug().Err(err).Str("template", name).Msg("Listed template not locatable")
			continue
		}
		info := types.TemplateInfo{Name: name, Path: loc.Path, URL: loc.URL}
		if loc.Remote() {
			_, info.Cached = session.Fetcher().Cached(loc.URL)
		}
		result.Templates = append(result.Templates, info)
	}

	log.Info().Str("command", "List").Int("templateCount", len(result.Templates)).Msg("Command finished")
	return result, nil
}
