// Package substitute rewrites placeholders with the values bound to their
// variables, keeping the casing each placeholder was written in.
//
// With project bound to "my-app", ScfProject becomes MyApp, scf_project
// becomes my_app and SCF_PROJECT_VERSION becomes MY_APP_VERSION. The prefix
// is never part of the replacement.
package substitute

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/placeholder"
	"github.com/arthur-debert/scaffer/pkg/variables"
)

// Engine applies one binding. It is safe for concurrent use once built.
type Engine struct {
	prefix casing.Prefix
	vocab  *placeholder.Vocabulary
	values map[string][]string
}

// New builds an engine for binding. Values are split into words once here.
func New(prefix casing.Prefix, binding *variables.Binding) *Engine {
	e := &Engine{
		prefix: prefix,
		vocab:  binding.Vocabulary(),
		values: make(map[string][]string, binding.Len()),
	}
	for _, n := range binding.Names() {
		v, _ := binding.Lookup(n)
		e.values[n.Kebab()] = casing.ParseName(v)
	}
	return e
}

// Apply returns text with every bound placeholder replaced. Placeholders
// of unbound variables are left as they are, and text without placeholders
// comes back unchanged.
func (e *Engine) Apply(text string) string {
	return e.apply(text, nil)
}

// ApplySegment is Apply for one file or directory name. Bytes that cannot
// appear in a file name are replaced with '_' in the inserted values; the
// template's own text is kept.
func (e *Engine) ApplySegment(segment string) string {
	return e.apply(segment, sanitizeSegment)
}

// ApplyPath substitutes every segment of a slash separated relative path
// on its own, so a placeholder never spans a separator.
func (e *Engine) ApplyPath(rel string) string {
	segments := strings.Split(filepath.ToSlash(rel), "/")
	for i, s := range segments {
		segments[i] = e.ApplySegment(s)
	}
	return filepath.FromSlash(strings.Join(segments, "/"))
}

// Changes reports whether Apply would modify text.
func (e *Engine) Changes(text string) bool {
	for occ := range placeholder.FindAll(text, e.prefix, e.vocab) {
		if _, ok := e.values[occ.Name.Kebab()]; ok {
			return true
		}
	}
	return false
}

func (e *Engine) apply(text string, clean func(string) string) string {
	var b strings.Builder
	replaced := false
	last := 0
	for occ := range placeholder.FindAll(text, e.prefix, e.vocab) {
		words, ok := e.values[occ.Name.Kebab()]
		if !ok {
			continue
		}
		if !replaced {
			b.Grow(len(text))
			replaced = true
		}
		value := casing.RenderValue(words, occ.Pattern)
		if clean != nil {
			value = clean(value)
		}
		b.WriteString(text[last:occ.Start])
		b.WriteString(value)
		last = occ.End
	}
	if !replaced {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// Apply is a convenience for a one-off substitution.
func Apply(text string, binding *variables.Binding, prefix casing.Prefix) string {
	return New(prefix, binding).Apply(text)
}

func sanitizeSegment(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r < 0x20 || r == 0x7f:
			return '_'
		case strings.ContainsRune(`<>:"|?*/\`, r):
			return '_'
		default:
			return r
		}
	}, value)
}
