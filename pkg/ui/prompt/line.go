package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/errors"
)

// Line reads one answer per line from a reader.
type Line struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLine reads answers from r and writes questions to out, which may be
// nil.
func NewLine(r io.Reader, out io.Writer) *Line {
	return &Line{scanner: bufio.NewScanner(r), out: out}
}

func (l *Line) ask(ctx context.Context, question string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if l.out != nil {
		fmt.Fprintf(l.out, "%s: ", question)
	}
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", false, errors.Wrap(err, errors.ErrInvalidInput, "reading input")
		}
		return "", false, nil
	}
	return strings.TrimRight(l.scanner.Text(), "\r"), true, nil
}

// Prompt reads the value of a variable. Running out of input is a
// MISSING_VARIABLE error naming the variable.
func (l *Line) Prompt(ctx context.Context, name casing.Name) (string, error) {
	value, ok, err := l.ask(ctx, Question(name))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Newf(errors.ErrMissingVariable, "no input left for %q", name.Kebab()).
			WithDetail(errors.DetailVariables, []string{name.Kebab()})
	}
	return value, nil
}

// Input reads a line. An empty line or end of input gives def.
func (l *Line) Input(ctx context.Context, label, def string) (string, error) {
	question := label
	if def != "" {
		question += " (" + def + ")"
	}
	value, _, err := l.ask(ctx, question)
	if err != nil {
		return "", err
	}
	if value = strings.TrimSpace(value); value == "" {
		return def, nil
	}
	return value, nil
}

// Select lists the options numbered from 1 and accepts a number or an
// option's text.
func (l *Line) Select(ctx context.Context, label string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New(errors.ErrInvalidInput, "nothing to select from")
	}
	if l.out != nil {
		for i, o := range options {
			fmt.Fprintf(l.out, "%3d) %s\n", i+1, o)
		}
	}
	value, ok, err := l.ask(ctx, label)
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return "", errors.New(errors.ErrInvalidInput, "no selection made")
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	for _, o := range options {
		if o == value {
			return o, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "%q is not one of the options", value)
}

// Confirm accepts y or yes, case-insensitively. Anything else is no, and
// an empty answer is def.
func (l *Line) Confirm(ctx context.Context, label string, def bool) (bool, error) {
	hint := " [y/N]"
	if def {
		hint = " [Y/n]"
	}
	value, _, err := l.ask(ctx, label+hint)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
