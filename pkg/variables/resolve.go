package variables

import (
	"context"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/logging"
)

// Prompter asks the user for the value of one variable.
type Prompter interface {
	Prompt(ctx context.Context, name casing.Name) (string, error)
}

// PromptFunc adapts a function to the Prompter interface.
type PromptFunc func(ctx context.Context, name casing.Name) (string, error)

// Prompt calls f.
func (f PromptFunc) Prompt(ctx context.Context, name casing.Name) (string, error) {
	return f(ctx, name)
}

// ResolveOptions holds the inputs of one resolution.
type ResolveOptions struct {
	// Discovered are the variables found in the template, in prompt order.
	Discovered []casing.Name
	// Supplied are the values given up front. They always win over prompts.
	Supplied *Binding
	// Prompter asks for missing values. Without one, resolution is
	// non-interactive and any missing value is an error.
	Prompter Prompter
}

// Resolve produces the final binding: every discovered variable in
// discovery order, followed by supplied variables the template never uses.
//
// When a prompter is set, it is called once per missing variable in
// discovery order. Without one, all missing variables are reported together
// in a single MISSING_VARIABLE error.
func Resolve(ctx context.Context, opts ResolveOptions) (*Binding, error) {
	logger := logging.GetLogger("variables")

	var missing []casing.Name
	for _, n := range opts.Discovered {
		if !opts.Supplied.Has(n) {
			missing = append(missing, n)
		}
	}

	if len(missing) > 0 && opts.Prompter == nil {
		names := make([]string, len(missing))
		for i, n := range missing {
			names[i] = n.Kebab()
		}
		return nil, errors.MissingVariables(names)
	}

	prompted := NewBinding()
	for _, n := range missing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, err := opts.Prompter.Prompt(ctx, n)
		if err != nil {
			if errors.GetErrorCode(err) != errors.ErrUnknown {
				return nil, err
			}
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "reading value for %q", n.Kebab())
		}
		if len(casing.ParseName(value)) == 0 {
			return nil, errors.Newf(errors.ErrInvalidInput, "value for %q cannot be empty", n.Kebab())
		}
		logger.Debug().Str("variable", n.Kebab()).Msg("Value prompted")
		prompted.Set(n, value)
	}

	out := NewBinding()
	for _, n := range opts.Discovered {
		if v, ok := opts.Supplied.Lookup(n); ok {
			out.Set(n, v)
			continue
		}
		v, _ := prompted.Lookup(n)
		out.Set(n, v)
	}
	for _, n := range opts.Supplied.Names() {
		if !out.Has(n) {
			v, _ := opts.Supplied.Lookup(n)
			out.Set(n, v)
			logger.Debug().Str("variable", n.Kebab()).Msg("Supplied variable is not used by the template")
		}
	}

	logger.Info().
		Int("discovered", len(opts.Discovered)).
		Int("prompted", len(missing)).
		Int("bound", out.Len()).
		Msg("Variables resolved")
	return out, nil
}
