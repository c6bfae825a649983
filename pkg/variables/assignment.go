package variables

import (
	"strings"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/errors"
)

// Assignment is one parsed key=value argument.
type Assignment struct {
	Name  casing.Name
	Value string
	Raw   string
}

// ParseAssignment parses a key=value argument. The key is either written as
// a placeholder (ScfAuthor, SCF_AUTHOR) or as free text (author, "Project
// Name", project-name); both give the same name.
func ParseAssignment(arg string, prefix casing.Prefix) (Assignment, error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok {
		return Assignment{}, errors.Newf(errors.ErrInvalidInput, "variable %q must be written as key=value", arg)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return Assignment{}, errors.Newf(errors.ErrInvalidInput, "variable %q has an empty name", arg)
	}
	if len(casing.ParseName(value)) == 0 {
		return Assignment{}, errors.Newf(errors.ErrInvalidInput, "variable %q has an empty value", key)
	}

	name, _, ok := casing.Decompose(key, prefix)
	if !ok {
		name = casing.ParseName(key)
	}
	if !name.Valid(prefix) {
		return Assignment{}, errors.Newf(errors.ErrInvalidInput,
			"%q is not a valid variable name: words must start with a letter and contain only letters and digits", key).
			WithDetail("key", key)
	}
	return Assignment{Name: name, Value: value, Raw: arg}, nil
}

// ParseAssignments parses every argument into a binding. A later assignment
// to the same name replaces the earlier value.
func ParseAssignments(args []string, prefix casing.Prefix) (*Binding, error) {
	b := NewBinding()
	for _, arg := range args {
		a, err := ParseAssignment(arg, prefix)
		if err != nil {
			return nil, err
		}
		b.Set(a.Name, a.Value)
	}
	return b, nil
}
