package placeholder_test

import (
	"slices"
	"testing"

	"github.com/arthur-debert/scaffer/pkg/casing"
	"github.com/arthur-debert/scaffer/pkg/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type found struct {
	text    string
	name    string
	pattern string
}

func collect(text string, occs []placeholder.Occurrence) []found {
	out := make([]found, 0, len(occs))
	for _, o := range occs {
		out = append(out, found{text: text[o.Start:o.End], name: o.Name.Kebab(), pattern: o.Pattern.String()})
	}
	return out
}

func TestScan(t *testing.T) {
	prefix := casing.Default()

	tests := []struct {
		name string
		text string
		want []found
	}{
		{
			name: "no boundary inside identifier",
			text: "fooscfoeoevaroeuoeuoeu",
			want: []found{},
		},
		{
			name: "pascal",
			text: "class ScfProject {}",
			want: []found{{"ScfProject", "project", "pascal"}},
		},
		{
			name: "every pattern",
			text: "ScfMyApp scf-my-app SCF-MY-APP scf.my.app SCF.MY.APP scf_my_app SCF_MY_APP scfmyapp SCFMYAPP",
			want: []found{
				{"ScfMyApp", "my-app", "pascal"},
				{"scf-my-app", "my-app", "kebab"},
				{"SCF-MY-APP", "my-app", "KEBAB"},
				{"scf.my.app", "my-app", "dot"},
				{"SCF.MY.APP", "my-app", "DOT"},
				{"scf_my_app", "my-app", "snake"},
				{"SCF_MY_APP", "my-app", "SNAKE"},
				{"scfmyapp", "myapp", "flat"},
				{"SCFMYAPP", "myapp", "FLAT"},
			},
		},
		{
			name: "trailing letter breaks the boundary",
			text: "scf_projectX, scfprojectX",
			want: []found{},
		},
		{
			name: "leading letter breaks the boundary",
			text: "myScfProject xscf_name",
			want: []found{},
		},
		{
			name: "underscore is a boundary",
			text: "_scf_name_",
			want: []found{{"scf_name", "name", "snake"}},
		},
		{
			name: "separator without word is literal",
			text: "scf_name_ end",
			want: []found{{"scf_name", "name", "snake"}},
		},
		{
			name: "word in other case stops the run",
			text: "SCF_NAME_Other",
			want: []found{{"SCF_NAME", "name", "SNAKE"}},
		},
		{
			name: "prefix word starts a new placeholder",
			text: "scf_project_scf_name",
			want: []found{
				{"scf_project", "project", "snake"},
				{"scf_name", "name", "snake"},
			},
		},
		{
			name: "mixed separators",
			text: "scf_my-app",
			want: []found{{"scf_my", "my", "snake"}},
		},
		{
			name: "digits inside words",
			text: "scf_api2_v3",
			want: []found{{"scf_api2_v3", "api2-v3", "snake"}},
		},
		{
			name: "prefix alone",
			text: "scf SCF Scf scf_",
			want: []found{},
		},
		{
			name: "path segment",
			text: "scf_project.rs",
			want: []found{{"scf_project", "project", "snake"}},
		},
		{
			name: "multi-byte text around placeholders",
			text: "héllo ScfName ünd",
			want: []found{{"ScfName", "name", "pascal"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occs := slices.Collect(placeholder.Scan(tt.text, prefix))
			assert.Equal(t, tt.want, collect(tt.text, occs))
		})
	}
}

func TestScanOrderAndOffsets(t *testing.T) {
	text := "a ScfB c scf_d"
	occs := slices.Collect(placeholder.Scan(text, casing.Default()))
	require.Len(t, occs, 2)
	assert.Equal(t, 2, occs[0].Start)
	assert.Equal(t, 6, occs[0].End)
	assert.Equal(t, 9, occs[1].Start)
	assert.Equal(t, len(text), occs[1].End)
	assert.Equal(t, 5, occs[1].Len())
}

func TestScanCustomPrefix(t *testing.T) {
	prefix := casing.MustPrefix("tpl")
	occs := slices.Collect(placeholder.Scan("TplName scf_other TPL_NAME", prefix))
	assert.Equal(t, []found{
		{"TplName", "name", "pascal"},
		{"TPL_NAME", "name", "SNAKE"},
	}, collect("TplName scf_other TPL_NAME", occs))
}

func TestScanStopsEarly(t *testing.T) {
	count := 0
	for range placeholder.Scan("scf_a scf_b scf_c", casing.Default()) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestContains(t *testing.T) {
	assert.True(t, placeholder.Contains("x := ScfName", casing.Default()))
	assert.False(t, placeholder.Contains("describe the scaffold", casing.Default()))
}
