package generator

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/filesystem"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/substitute"
	"github.com/arthur-debert/scaffer/pkg/types"
	"github.com/arthur-debert/scaffer/pkg/variables"
	"github.com/rs/zerolog"
)

// Options holds the inputs of one generation run. Everything the run
// depends on is passed in here; nothing is read from the environment.
type Options struct {
	// TemplateName is only used for reporting. It defaults to TemplateRoot.
	TemplateName string
	TemplateRoot string
	Destination  string
	// Prefix defaults to casing.DefaultPrefix.
	Prefix   casing.Prefix
	Supplied *variables.Binding
	// Prompter asks for missing values. Nil means non-interactive.
	Prompter variables.Prompter
	Force    bool
	DryRun   bool
	// FileSystem defaults to the OS.
	FileSystem types.FS
}

// planned is one destination entry computed during rendering.
type planned struct {
	entry Entry
	path  string
	data  []byte
	err   error
}

// Generate renders the template into the destination.
//
// The run scans the whole template, resolves every variable, renders every
// path and content, and only then touches the destination. Errors up to
// that point abort the run with nothing written. While writing, a conflict
// or a failure only affects its own file; failures are returned together
// as one IO_FAILURE error after the walk, along with the full result.
//
// A dry run stops after rendering and reports what would be written.
func Generate(ctx context.Context, opts Options) (*types.GenerateResult, error) {
	logger := logging.GetLogger("generator")
	defer logging.LogOperationStart(logger, "generate")()

	if opts.Prefix.IsZero() {
		opts.Prefix = casing.Default()
	}
	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	if opts.TemplateName == "" {
		opts.TemplateName = opts.TemplateRoot
	}
	if opts.Destination == "" {
		return nil, errors.New(errors.ErrInvalidInput, "destination is required")
	}

	result := &types.GenerateResult{
		Template:    opts.TemplateName,
		Destination: opts.Destination,
		DryRun:      opts.DryRun,
		Phase:       types.PhaseScanning,
	}

	tpl, err := Load(ctx, opts.FileSystem, opts.TemplateRoot, opts.Prefix)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrTemplateNotFound) {
			return result, errors.TemplateNotFound(opts.TemplateName, []string{opts.TemplateRoot})
		}
		return result, err
	}

	result.Phase = types.PhaseResolving
	discovered := tpl.Variables(opts.Supplied)
	binding, err := variables.Resolve(ctx, variables.ResolveOptions{
		Discovered: discovered,
		Supplied:   opts.Supplied,
		Prompter:   opts.Prompter,
	})
	if err != nil {
		return result, err
	}
	for _, n := range binding.Names() {
		v, _ := binding.Lookup(n)
		result.Variables = append(result.Variables, types.Variable{Name: n.Kebab(), Value: v})
	}

	result.Phase = types.PhaseRendering
	plan := render(tpl, substitute.New(opts.Prefix, binding))

	if opts.DryRun {
		for _, p := range plan {
			result.Files = append(result.Files, dryRunReport(opts.FileSystem, opts.Destination, p))
		}
		result.Phase = types.PhaseDone
		logger.Info().
			Str("template", opts.TemplateName).
			Int("entries", len(result.Files)).
			Msg("Dry run planned")
		return result, nil
	}

	result.Phase = types.PhaseWriting
	if err := opts.FileSystem.MkdirAll(opts.Destination, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrIOFailure, "creating destination %s", opts.Destination).
			WithDetail(errors.DetailPath, opts.Destination)
	}

	for _, p := range plan {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		report := write(opts.FileSystem, opts.Destination, p, opts.Force)
		logReport(logger, report)
		result.Files = append(result.Files, report)
	}
	result.Phase = types.PhaseDone

	logger.Info().
		Str("template", opts.TemplateName).
		Str("destination", opts.Destination).
		Int("created", result.Count(types.StatusCreated)).
		Int("overwritten", result.Count(types.StatusOverwritten)).
		Int("unchanged", result.Count(types.StatusUnchanged)).
		Int("conflicts", len(result.Conflicts())).
		Int("failed", len(result.Failures())).
		Msg("Template generated")

	if failures := result.Failures(); len(failures) > 0 {
		paths := make([]string, len(failures))
		for i, f := range failures {
			paths[i] = f.Path
		}
		return result, errors.Newf(errors.ErrIOFailure, "%d of %d entries could not be written", len(failures), len(result.Files)).
			WithDetail(errors.DetailPaths, paths)
	}
	return result, nil
}

// render computes the destination path and bytes of every template entry.
func render(tpl *Template, engine *substitute.Engine) []planned {
	plan := make([]planned, 0, len(tpl.Entries))
	seen := make(map[string]string, len(tpl.Entries))

	for _, e := range tpl.Entries {
		p := planned{entry: e, path: filepath.ToSlash(engine.ApplyPath(e.Rel))}

		if err := checkRendered(p.path); err != nil {
			p.err = fmt.Errorf("%s renders to invalid path %q: %w", e.Rel, p.path, err)
		} else if other, ok := seen[p.path]; ok && !e.IsDir {
			p.err = fmt.Errorf("%s renders to %s, already produced by %s", e.Rel, p.path, other)
		}
		seen[p.path] = e.Rel

		if !e.IsDir {
			if e.Binary {
				p.data = e.Data
			} else {
				p.data = []byte(engine.Apply(string(e.Data)))
			}
		}
		plan = append(plan, p)
	}
	return plan
}

func checkRendered(rel string) error {
	for _, seg := range strings.Split(rel, "/") {
		switch seg {
		case "", ".", "..":
			return fmt.Errorf("segment %q", seg)
		}
	}
	return nil
}

func dryRunReport(fsys types.FS, dest string, p planned) types.FileReport {
	report := baseReport(p)
	report.Status = types.StatusPlanned
	if p.err != nil {
		report.Error = p.err.Error()
		return report
	}
	if _, err := fsys.Stat(filepath.Join(dest, filepath.FromSlash(p.path))); err == nil {
		report.Exists = true
	}
	return report
}

func write(fsys types.FS, dest string, p planned, force bool) types.FileReport {
	report := baseReport(p)
	fail := func(err error) types.FileReport {
		report.Status = types.StatusFailed
		report.Error = err.Error()
		return report
	}
	if p.err != nil {
		return fail(p.err)
	}

	target := filepath.Join(dest, filepath.FromSlash(p.path))
	info, statErr := fsys.Lstat(target)
	report.Exists = statErr == nil

	if p.entry.IsDir {
		if report.Exists {
			if !info.IsDir() {
				return fail(fmt.Errorf("%s exists and is not a directory", p.path))
			}
			report.Status = types.StatusUnchanged
			return report
		}
		if err := fsys.MkdirAll(target, dirMode(p.entry.Mode)); err != nil {
			return fail(err)
		}
		report.Status = types.StatusCreated
		return report
	}

	if report.Exists {
		if info.IsDir() {
			return fail(fmt.Errorf("%s exists and is a directory", p.path))
		}
		current, err := fsys.ReadFile(target)
		if err == nil && bytes.Equal(current, p.data) {
			report.Status = types.StatusUnchanged
			return report
		}
		if !force && len(p.data) == 0 {
			// only a non-empty write can conflict; the existing file stays
			report.Status = types.StatusUnchanged
			return report
		}
		if !force {
			report.Status = types.StatusConflict
			report.Error = errors.Newf(errors.ErrWriteConflict, "%s already exists", p.path).Error()
			return report
		}
	}

	if err := fsys.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fail(err)
	}
	if err := filesystem.WriteFileAtomic(fsys, target, p.data, p.entry.Mode); err != nil {
		return fail(err)
	}
	if report.Exists {
		report.Status = types.StatusOverwritten
	} else {
		report.Status = types.StatusCreated
	}
	return report
}

func baseReport(p planned) types.FileReport {
	return types.FileReport{
		Source: p.entry.Rel,
		Path:   p.path,
		IsDir:  p.entry.IsDir,
		Binary: p.entry.Binary,
	}
}

// dirMode keeps created directories writable by their owner so the files
// inside them can be written.
func dirMode(mode fs.FileMode) fs.FileMode {
	if mode == 0 {
		return 0755
	}
	return mode | 0700
}

func logReport(logger zerolog.Logger, r types.FileReport) {
	switch r.Status {
	case types.StatusConflict:
		logger.Warn().Str("path", r.Path).Msg("File exists, skipped (use --force to overwrite)")
	case types.StatusFailed:
		logger.Error().Str("path", r.Path).Str("error", r.Error).Msg("Write failed")
	default:
		logger.Debug().Str("path", r.Path).Str("status", string(r.Status)).Msg("Entry written")
	}
}
