package variables

import (
	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/placeholder"
)

// Discovery collects placeholders across every text of a template tree and
// decides, once everything has been seen, which variable each one refers
// to. Names only settle tree-wide: SCF_PROJECT_VERSION is the variable
// "project version" unless "project" alone shows up somewhere else.
type Discovery struct {
	prefix casing.Prefix
	found  []placeholder.Occurrence
}

// NewDiscovery returns an empty discovery for prefix.
func NewDiscovery(prefix casing.Prefix) *Discovery {
	return &Discovery{prefix: prefix}
}

// Scan records the placeholders of text and returns how many it found.
func (d *Discovery) Scan(text string) int {
	n := 0
	for occ := range placeholder.Scan(text, d.prefix) {
		d.found = append(d.found, occ)
		n++
	}
	return n
}

// Occurrences returns how many placeholders were recorded.
func (d *Discovery) Occurrences() int {
	return len(d.found)
}

// Names returns the discovered variables in the order they first appear.
//
// Supplied names and names written in Pascal case are taken as given. A
// snake, kebab or dot placeholder refers to the longest of those it starts
// with; otherwise to the shortest of its leading word runs that some other
// separated placeholder spells out on its own. A flat placeholder refers to
// the earliest discovered non-flat name that flattens to it, then to a
// supplied one, and otherwise is a single-word name.
func (d *Discovery) Names(supplied *Binding) []casing.Name {
	fixed := placeholder.NewVocabulary(supplied.Names()...)
	spelled := placeholder.NewVocabulary()
	for _, occ := range d.found {
		switch occ.Pattern.Style {
		case casing.StylePascal:
			fixed.Add(occ.Name)
			spelled.Add(occ.Name)
		case casing.StyleFlat:
		default:
			spelled.Add(occ.Name)
		}
	}

	finals := make([]casing.Name, len(d.found))
	nonFlat := placeholder.NewVocabulary()
	for i, occ := range d.found {
		switch occ.Pattern.Style {
		case casing.StyleFlat:
			continue
		case casing.StylePascal:
			finals[i] = occ.Name
		default:
			finals[i] = d.separated(occ.Name, fixed, spelled)
		}
		nonFlat.Add(finals[i])
	}

	known := placeholder.NewVocabulary(supplied.Names()...)
	ordered := placeholder.NewVocabulary()
	for i, occ := range d.found {
		if occ.Pattern.Style == casing.StyleFlat {
			flat := occ.Name.Flatten()
			if n, ok := nonFlat.Flat(flat); ok {
				finals[i] = n
			} else if n, ok := known.Flat(flat); ok {
				finals[i] = n
			} else {
				finals[i] = occ.Name
			}
		}
		ordered.Add(finals[i])
	}
	return ordered.Names()
}

func (d *Discovery) separated(raw casing.Name, fixed, spelled *placeholder.Vocabulary) casing.Name {
	if n, ok := fixed.Longest(raw); ok {
		return n
	}
	for k := 1; k < len(raw); k++ {
		if spelled.Contains(raw[:k]) {
			return raw[:k]
		}
	}
	return raw
}
