package prompt

import (
	"context"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/pterm/pterm"
)

// Terminal asks with pterm's interactive printers.
type Terminal struct{}

// NewTerminal creates a pterm-backed Asker.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Prompt asks for a variable until the answer has at least one word.
func (t *Terminal) Prompt(ctx context.Context, name casing.Name) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		value, err := pterm.DefaultInteractiveTextInput.WithDefaultText(Question(name)).Show()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInvalidInput, "reading input")
		}
		if len(casing.ParseName(value)) > 0 {
			return value, nil
		}
		pterm.Warning.Println("A value is required")
	}
}

// Input asks a free-form question.
func (t *Terminal) Input(ctx context.Context, label, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if def != "" {
		label += " (" + def + ")"
	}
	value, err := pterm.DefaultInteractiveTextInput.WithDefaultText(label).Show()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "reading input")
	}
	if value = strings.TrimSpace(value); value == "" {
		return def, nil
	}
	return value, nil
}

// Select shows a scrollable, filterable list.
func (t *Terminal) Select(ctx context.Context, label string, options []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", errors.New(errors.ErrInvalidInput, "nothing to select from")
	}
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(label).
		WithMaxHeight(15).
		Show()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "reading selection")
	}
	return choice, nil
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(ctx context.Context, label string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := pterm.DefaultInteractiveConfirm.WithDefaultText(label).WithDefaultValue(def).Show()
	if err != nil {
		return false, errors.Wrap(err, errors.ErrInvalidInput, "reading confirmation")
	}
	return ok, nil
}
