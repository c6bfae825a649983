// Package prompt asks the user questions.
//
// Terminal uses pterm's interactive widgets. Line reads one answer per line
// and is used whenever stdin is not a terminal, so answers can be piped in
// the order the questions are asked.
package prompt

import (
	"context"
	"io"
	"os"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/ui"
	"github.com/arthur-debert/scaffer/pkg/variables"
)

// Asker asks free-form, multiple-choice and yes/no questions. Every Asker
// also answers variable prompts.
type Asker interface {
	variables.Prompter
	// Input returns the answer, or def when the answer is empty.
	Input(ctx context.Context, label, def string) (string, error)
	Select(ctx context.Context, label string, options []string) (string, error)
	Confirm(ctx context.Context, label string, def bool) (bool, error)
}

// New returns a Terminal when in is a terminal and a Line otherwise.
// Questions are written to out.
func New(in *os.File, out io.Writer) Asker {
	if ui.IsTerminal(in) {
		return NewTerminal()
	}
	return NewLine(in, out)
}

// Question is the text shown when asking for a variable.
func Question(name casing.Name) string {
	return "Enter value for '" + name.Kebab() + "'"
}
