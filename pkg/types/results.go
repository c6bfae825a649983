package types

// Phase is the step a generation run reached.
type Phase string

const (
	PhaseScanning  Phase = "scanning"
	PhaseResolving Phase = "resolving"
	PhaseRendering Phase = "rendering"
	PhaseWriting   Phase = "writing"
	PhaseDone      Phase = "done"
)

// FileStatus is what happened, or would happen, to one destination entry.
type FileStatus string

const (
	// StatusPlanned marks every entry of a dry run.
	StatusPlanned FileStatus = "planned"
	// StatusCreated is a file or directory that did not exist before.
	StatusCreated FileStatus = "created"
	// StatusOverwritten is an existing file replaced under --force.
	StatusOverwritten FileStatus = "overwritten"
	// StatusUnchanged is an existing file that already had the rendered
	// content, or an existing directory.
	StatusUnchanged FileStatus = "unchanged"
	// StatusConflict is an existing file left alone because force was off.
	StatusConflict FileStatus = "conflict"
	// StatusFailed is an entry whose write failed.
	StatusFailed FileStatus = "failed"
)

// FileReport describes one entry of the destination tree.
type FileReport struct {
	// Source is the template path, relative to the template root.
	Source string `json:"source"`
	// Path is the destination path, relative to the destination root.
	Path   string     `json:"path"`
	IsDir  bool       `json:"isDir"`
	Binary bool       `json:"binary"`
	Exists bool       `json:"exists"`
	Status FileStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// Variable is one resolved variable, for reporting.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// GenerateResult is the outcome of a generation run.
type GenerateResult struct {
	Template    string       `json:"template"`
	Destination string       `json:"destination"`
	DryRun      bool         `json:"dryRun"`
	Phase       Phase        `json:"phase"`
	Variables   []Variable   `json:"variables"`
	Files       []FileReport `json:"files"`
}

// WithStatus returns the reports with the given status, in walk order.
func (r *GenerateResult) WithStatus(status FileStatus) []FileReport {
	var out []FileReport
	for _, f := range r.Files {
		if f.Status == status {
			out = append(out, f)
		}
	}
	return out
}

// Conflicts returns the files skipped because they already existed.
func (r *GenerateResult) Conflicts() []FileReport {
	return r.WithStatus(StatusConflict)
}

// Failures returns the entries that could not be written.
func (r *GenerateResult) Failures() []FileReport {
	return r.WithStatus(StatusFailed)
}

// Paths returns the destination paths of all files, in walk order.
// Directories are left out.
func (r *GenerateResult) Paths() []string {
	var out []string
	for _, f := range r.Files {
		if !f.IsDir {
			out = append(out, f.Path)
		}
	}
	return out
}

// Count returns how many files have the given status.
func (r *GenerateResult) Count(status FileStatus) int {
	n := 0
	for _, f := range r.Files {
		if !f.IsDir && f.Status == status {
			n++
		}
	}
	return n
}
