package placeholder

import (
	"iter"

	"github.com/arthur-debert/scaffer/pkg/casing"
)

// Vocabulary is an ordered set of known names. Order matters for flat
// placeholders: the first name that flattens to the text wins.
type Vocabulary struct {
	names []casing.Name
	index map[string]int
}

// NewVocabulary returns a vocabulary holding names in the given order,
// duplicates dropped.
func NewVocabulary(names ...casing.Name) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int)}
	for _, n := range names {
		v.Add(n)
	}
	return v
}

// Add appends name unless it is already known. It reports whether the name
// was added.
func (v *Vocabulary) Add(name casing.Name) bool {
	if len(name) == 0 {
		return false
	}
	if v.index == nil {
		v.index = make(map[string]int)
	}
	key := name.Kebab()
	if _, ok := v.index[key]; ok {
		return false
	}
	v.index[key] = len(v.names)
	v.names = append(v.names, name)
	return true
}

// Contains reports whether name is known.
func (v *Vocabulary) Contains(name casing.Name) bool {
	if v == nil {
		return false
	}
	_, ok := v.index[name.Kebab()]
	return ok
}

// Len returns the number of known names.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.names)
}

// Names returns the known names in insertion order.
func (v *Vocabulary) Names() []casing.Name {
	if v == nil {
		return nil
	}
	out := make([]casing.Name, len(v.names))
	copy(out, v.names)
	return out
}

// Longest returns the longest known name that name starts with.
func (v *Vocabulary) Longest(name casing.Name) (casing.Name, bool) {
	if v == nil {
		return nil, false
	}
	for n := len(name); n > 0; n-- {
		if i, ok := v.index[name[:n].Kebab()]; ok {
			return v.names[i], true
		}
	}
	return nil, false
}

// Flat returns the first known name whose words joined together are flat.
func (v *Vocabulary) Flat(flat string) (casing.Name, bool) {
	if v == nil {
		return nil, false
	}
	for _, n := range v.names {
		if n.Flatten() == flat {
			return n, true
		}
	}
	return nil, false
}

// Resolve returns occ with its name resolved against the vocabulary. Flat
// occurrences get the first known name that flattens to their text.
// Separator occurrences are narrowed to the longest known name they start
// with; the words after it become literal text outside the occurrence.
// Anything without a known name is returned unchanged.
func (v *Vocabulary) Resolve(occ Occurrence, prefix casing.Prefix) Occurrence {
	switch occ.Pattern.Style {
	case casing.StyleFlat:
		if n, ok := v.Flat(occ.Name.Flatten()); ok {
			occ.Name = n
		}
	case casing.StylePascal:
	default:
		if n, ok := v.Longest(occ.Name); ok && len(n) < len(occ.Name) {
			occ.Name = n
			occ.End = occ.Start + len(casing.Render(n, occ.Pattern, prefix))
		}
	}
	return occ
}

// FindAll yields the placeholders of text from left to right, each resolved
// against vocab. A nil vocabulary yields the occurrences of Scan.
func FindAll(text string, prefix casing.Prefix, vocab *Vocabulary) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		for occ := range Scan(text, prefix) {
			if vocab != nil {
				occ = vocab.Resolve(occ, prefix)
			}
			if !yield(occ) {
				return
			}
		}
	}
}
