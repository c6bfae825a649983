package variables

import (
	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/placeholder"
)

// Binding maps variable names to raw user values. It remembers insertion
// order: names are prompted, reported and matched against flat placeholders
// in that order.
type Binding struct {
	names  []casing.Name
	values map[string]string
}

// NewBinding returns an empty binding.
func NewBinding() *Binding {
	return &Binding{values: make(map[string]string)}
}

// Set binds name to value. Rebinding a name keeps its original position.
func (b *Binding) Set(name casing.Name, value string) {
	if b.values == nil {
		b.values = make(map[string]string)
	}
	key := name.Kebab()
	if _, ok := b.values[key]; !ok {
		b.names = append(b.names, name)
	}
	b.values[key] = value
}

// Lookup returns the raw value bound to name.
func (b *Binding) Lookup(name casing.Name) (string, bool) {
	if b == nil {
		return "", false
	}
	v, ok := b.values[name.Kebab()]
	return v, ok
}

// Has reports whether name is bound.
func (b *Binding) Has(name casing.Name) bool {
	_, ok := b.Lookup(name)
	return ok
}

// Names returns the bound names in insertion order.
func (b *Binding) Names() []casing.Name {
	if b == nil {
		return nil
	}
	out := make([]casing.Name, len(b.names))
	copy(out, b.names)
	return out
}

// Len returns the number of bound names.
func (b *Binding) Len() int {
	if b == nil {
		return 0
	}
	return len(b.names)
}

// Vocabulary returns the bound names as a placeholder vocabulary.
func (b *Binding) Vocabulary() *placeholder.Vocabulary {
	return placeholder.NewVocabulary(b.Names()...)
}

// Map returns the binding keyed by the kebab form of each name.
func (b *Binding) Map() map[string]string {
	out := make(map[string]string, b.Len())
	for _, n := range b.Names() {
		out[n.Kebab()] = b.values[n.Kebab()]
	}
	return out
}

// Clone returns an independent copy.
func (b *Binding) Clone() *Binding {
	c := NewBinding()
	for _, n := range b.Names() {
		c.Set(n, b.values[n.Kebab()])
	}
	return c
}
