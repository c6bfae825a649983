package types

// TemplateInfo is one entry of `scaffer list`.
type TemplateInfo struct {
	Name string `json:"name"`
	// Path is set for templates found under a template root.
	Path string `json:"path,omitempty"`
	// URL is set for configured remote templates.
	URL string `json:"url,omitempty"`
	// Cached tells whether a remote template has been fetched before.
	Cached bool `json:"cached,omitempty"`
}

// ListResult holds the templates available from the current directory.
type ListResult struct {
	Roots     []string       `json:"roots"`
	Templates []TemplateInfo `json:"templates"`
}

// ShowResult describes a template without generating it.
type ShowResult struct {
	Template string `json:"template"`
	Path     string `json:"path"`
	Prefix   string `json:"prefix"`
	// Variables are in the order generate would prompt for them.
	Variables   []string `json:"variables"`
	Entries     int      `json:"entries"`
	Occurrences int      `json:"occurrences"`
	HasHook     bool     `json:"hasHook"`
	Readme      string   `json:"readme,omitempty"`
}

// PullItem is the outcome for one remote template.
type PullItem struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Root  string `json:"root,omitempty"`
	Error string `json:"error,omitempty"`
}

// PullResult lists every remote template fetched by `scaffer pull`.
type PullResult struct {
	Items []PullItem `json:"items"`
}

// Failed returns the items that could not be fetched.
func (r *PullResult) Failed() []PullItem {
	var out []PullItem
	for _, it := range r.Items {
		if it.Error != "" {
			out = append(out, it)
		}
	}
	return out
}

// ActionResult reports a command that writes one file or config entry:
// add, setup, barrel and gitignore.
type ActionResult struct {
	Command string `json:"command"`
	Path    string `json:"path"`
	// Changed is false when nothing had to be written.
	Changed bool     `json:"changed"`
	Message string   `json:"message"`
	Items   []string `json:"items,omitempty"`
}
