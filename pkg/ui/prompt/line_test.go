package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/variables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Asker = (*Line)(nil)
var _ Asker = (*Terminal)(nil)

func TestLine_Prompt(t *testing.T) {
	var out bytes.Buffer
	l := NewLine(strings.NewReader("My App\r\n"), &out)
	ctx := context.Background()

	v, err := l.Prompt(ctx, casing.Name{"project", "name"})
	require.NoError(t, err)
	assert.Equal(t, "My App", v)
	assert.Equal(t, "Enter value for 'project-name': ", out.String())

	_, err = l.Prompt(ctx, casing.Name{"author"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingVariable))
	assert.Equal(t, []string{"author"}, errors.GetErrorDetails(err)[errors.DetailVariables])
}

func TestLine_DrivesResolve(t *testing.T) {
	l := NewLine(strings.NewReader("demo\nJane Doe\n"), nil)
	b, err := variables.Resolve(context.Background(), variables.ResolveOptions{
		Discovered: []casing.Name{{"project"}, {"author"}},
		Prompter:   l,
	})
	require.NoError(t, err)

	v, _ := b.Lookup(casing.Name{"author"})
	assert.Equal(t, "Jane Doe", v)
}

func TestLine_Input(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"answer", "src/templates\n", "templates", "src/templates"},
		{"empty takes default", "\n", "templates", "templates"},
		{"eof takes default", "", "templates", "templates"},
		{"trimmed", "  a, b  \n", "", "a, b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine(strings.NewReader(tt.input), nil)
			got, err := l.Input(context.Background(), "Template directories", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLine_Select(t *testing.T) {
	options := []string{"cli", "lib", "web"}
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "by number", input: "2\n", want: "lib"},
		{name: "by name", input: "web\n", want: "web"},
		{name: "out of range", input: "4\n", wantErr: true},
		{name: "unknown", input: "api\n", wantErr: true},
		{name: "empty", input: "\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			l := NewLine(strings.NewReader(tt.input), &out)
			got, err := l.Select(context.Background(), "Select a template", options)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "  2) lib\n")
		})
	}
}

func TestLine_Confirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"maybe\n", true, false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			l := NewLine(strings.NewReader(tt.input), nil)
			got, err := l.Confirm(context.Background(), "Overwrite?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLine(strings.NewReader("x\n"), nil).Input(ctx, "q", "")
	assert.ErrorIs(t, err, context.Canceled)
}
