// Package terminal renders command results for people: styled when the
// output is a color terminal, plain otherwise. Both modes share one layout
// so piped output reads the same as what the user sees.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/types"
	"github.com/arthur-debert/scaffer/pkg/ui/markdown"
	"github.com/arthur-debert/scaffer/pkg/ui/styles"
)

// statusWidth matches the width of the status styles in styles.yaml.
const statusWidth = 12

// Renderer writes results to an io.Writer.
type Renderer struct {
	output io.Writer
	plain  bool
}

// New creates a styled renderer.
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// NewPlain creates a renderer that never emits escape codes.
func NewPlain(w io.Writer) *Renderer {
	return &Renderer{output: w, plain: true}
}

func (r *Renderer) style(name, s string) string {
	if r.plain {
		return s
	}
	return styles.Render(name, s)
}

func (r *Renderer) status(s types.FileStatus) string {
	name := string(s)
	if r.plain {
		return fmt.Sprintf("%-*s", statusWidth, name)
	}
	return styles.Render(strings.ToUpper(name[:1])+name[1:], name)
}

func (r *Renderer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.output, format, args...)
}

// RenderResult renders the result types of package types.
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.GenerateResult:
		r.renderGenerate(v)
	case *types.ListResult:
		r.renderList(v)
	case *types.ShowResult:
		r.renderShow(v)
	case *types.PullResult:
		r.renderPull(v)
	case *types.ActionResult:
		r.renderAction(v)
	default:
		r.printf("%+v\n", result)
	}
	return nil
}

func (r *Renderer) renderGenerate(res *types.GenerateResult) {
	if res.DryRun {
		r.printf("%s %s into %s\n", r.style("DryRunBanner", "Dry run:"),
			r.style("Template", res.Template), r.style("FilePath", res.Destination))
	} else {
		r.printf("Generated %s into %s\n", r.style("Template", res.Template), r.style("FilePath", res.Destination))
	}

	if len(res.Variables) > 0 {
		r.printf("\n%s\n", r.style("SubHeader", "Variables"))
		width := 0
		for _, v := range res.Variables {
			width = max(width, len(v.Name))
		}
		for _, v := range res.Variables {
			r.printf("  %s%s = %s\n", r.style("Variable", v.Name), strings.Repeat(" ", width-len(v.Name)), r.style("Value", v.Value))
		}
	}

	if len(res.Files) > 0 {
		r.printf("\n%s\n", r.style("SubHeader", "Files"))
	}
	for _, f := range res.Files {
		path := f.Path
		if f.IsDir {
			path += "/"
		}
		line := "  " + r.status(f.Status) + " " + path
		switch {
		case f.Status == types.StatusConflict:
			line += r.style("Muted", " (exists, use --force to overwrite)")
		case f.Error != "":
			line += " " + r.style("Error", f.Error)
		case res.DryRun && f.Exists && !f.IsDir:
			line += r.style("Warning", " (exists)")
		}
		r.printf("%s\n", line)
	}

	r.printf("\n%s\n", r.summary(res))
}

func (r *Renderer) summary(res *types.GenerateResult) string {
	if res.DryRun {
		return r.style("Muted", fmt.Sprintf("%d files would be written, nothing was changed", res.Count(types.StatusPlanned)))
	}
	var parts []string
	add := func(n int, label, style string) {
		if n > 0 {
			parts = append(parts, r.style(style, fmt.Sprintf("%d %s", n, label)))
		}
	}
	add(res.Count(types.StatusCreated), "created", "Success")
	add(res.Count(types.StatusOverwritten), "overwritten", "Warning")
	add(res.Count(types.StatusUnchanged), "unchanged", "Muted")
	add(len(res.Conflicts()), "skipped", "Warning")
	add(len(res.Failures()), "failed", "Error")
	if len(parts) == 0 {
		return r.style("Muted", "nothing to write")
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) renderList(res *types.ListResult) {
	if len(res.Templates) == 0 {
		r.printf("No templates found. Run 'scaffer setup' to configure template directories.\n")
		return
	}
	r.printf("%s\n", r.style("Header", "Available templates"))
	width := 0
	for _, t := range res.Templates {
		width = max(width, len(t.Name))
	}
	for _, t := range res.Templates {
		pad := strings.Repeat(" ", width-len(t.Name))
		switch {
		case t.URL != "":
			note := ""
			if t.Cached {
				note = r.style("Muted", " (cached)")
			}
			r.printf("  %s%s  %s%s\n", r.style("Template", t.Name), pad, r.style("URL", t.URL), note)
		default:
			r.printf("  %s%s  %s\n", r.style("Template", t.Name), pad, r.style("FilePath", t.Path))
		}
	}
}

func (r *Renderer) renderShow(res *types.ShowResult) {
	r.printf("%s %s\n", r.style("Header", res.Template), r.style("FilePath", res.Path))
	r.printf("%s\n", r.style("Muted", fmt.Sprintf("%d entries, %d placeholders, prefix %q", res.Entries, res.Occurrences, res.Prefix)))
	if res.HasHook {
		r.printf("%s\n", r.style("Warning", "has a scaffer_init.py hook (not run)"))
	}

	r.printf("\n%s\n", r.style("SubHeader", "Variables"))
	if len(res.Variables) == 0 {
		r.printf("  %s\n", r.style("Muted", "none"))
	}
	for _, v := range res.Variables {
		r.printf("  %s\n", r.style("Variable", v))
	}

	if res.Readme != "" {
		r.printf("\n%s", markdown.Render(res.Readme, !r.plain))
	}
}

func (r *Renderer) renderPull(res *types.PullResult) {
	if len(res.Items) == 0 {
		r.printf("No remote templates configured.\n")
		return
	}
	for _, it := range res.Items {
		if it.Error != "" {
			r.printf("  %s %s %s\n", r.status(types.StatusFailed), r.style("Template", it.Name), r.style("Error", it.Error))
			continue
		}
		r.printf("  %s %s %s\n", r.style("Success", fmt.Sprintf("%-*s", statusWidth, "fetched")), r.style("Template", it.Name), r.style("Muted", it.Root))
	}
}

func (r *Renderer) renderAction(res *types.ActionResult) {
	style := "Success"
	if !res.Changed {
		style = "Muted"
	}
	r.printf("%s\n", r.style(style, res.Message))
	for _, it := range res.Items {
		r.printf("  %s\n", it)
	}
}

// RenderError renders an error with the details that help fix it.
func (r *Renderer) RenderError(err error) error {
	r.printf("%s %s\n", r.style("Error", "Error:"), err.Error())

	details := errors.GetErrorDetails(err)
	switch errors.GetErrorCode(err) {
	case errors.ErrMissingVariable:
		if names, ok := details[errors.DetailVariables].([]string); ok {
			for _, n := range names {
				r.printf("  -v %s=...\n", n)
			}
		}
	case errors.ErrTemplateNotFound:
		if searched, ok := details[errors.DetailSearched].([]string); ok && len(searched) > 0 {
			r.printf("%s\n", r.style("Muted", "searched:"))
			for _, s := range searched {
				r.printf("  %s\n", r.style("FilePath", s))
			}
		}
	case errors.ErrIOFailure:
		if paths, ok := details[errors.DetailPaths].([]string); ok {
			for _, p := range paths {
				r.printf("  %s\n", r.style("FilePath", p))
			}
		}
	}
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	r.printf("%s\n", msg)
	return nil
}
