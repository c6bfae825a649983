// Package topics adds help topics to a cobra application: documents that
// are not commands but can be read with `<app> help <topic>`. Topics are
// read from an fs.FS, usually an embedded directory, so the binary carries
// its own documentation.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// ListKeyword is the help argument that lists every topic.
const ListKeyword = "topics"

// TopicManager holds the topics of one application.
type TopicManager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic is one help document.
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions considered topics.
	// Defaults to [".txt", ".md"].
	Extensions []string
	// Renderer defaults to PlainRenderer.
	Renderer Renderer
}

// Load reads every topic file under root in fsys. A missing root yields a
// manager without topics.
func Load(fsys fs.FS, root string, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	if _, err := fs.Stat(fsys, root); err != nil {
		return tm, nil
	}
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tm.supported(path.Ext(p)) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		tm.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return tm, nil
}

func (tm *TopicManager) supported(ext string) bool {
	for _, e := range tm.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. Flag-style names (--dry) also find
// the topic named option-dry.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics["option-"+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted.
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns a topic formatted by the manager's renderer.
func (tm *TopicManager) Render(t *Topic) string {
	return tm.renderer.Render(t.Content, path.Ext(t.Path))
}

// WriteList prints the topic index.
func (tm *TopicManager) WriteList(w io.Writer, app string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}

	var options, general []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	_, _ = fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			_, _ = fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			_, _ = fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	_, _ = fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
}

// Install replaces the root command's help command with one that also
// knows about topics.
func (tm *TopicManager) Install(rootCmd *cobra.Command) {
	originalHelp := rootCmd.HelpFunc()
	app := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + app + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + app + ` help ` + ListKeyword,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{ListKeyword}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				originalHelp(rootCmd, nil)
			case args[0] == ListKeyword:
				tm.WriteList(out, app)
			default:
				if topic, ok := tm.GetTopic(args[0]); ok {
					_, _ = fmt.Fprint(out, tm.Render(topic))
					return
				}
				target, _, err := rootCmd.Find(args)
				if err != nil || target == nil {
					originalHelp(rootCmd, args)
					return
				}
				originalHelp(target, nil)
			}
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)
}
