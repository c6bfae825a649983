// Package scaffer is the command line interface: cobra commands that parse
// flags, call into pkg/commands and render the results with pkg/ui.
package scaffer

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/scaffer/internal/version"
	"github.com/arthur-debert/scaffer/pkg/cobrax/topics"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/arthur-debert/scaffer/pkg/logging"
	"github.com/arthur-debert/scaffer/pkg/ui"
	"github.com/arthur-debert/scaffer/pkg/ui/prompt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// app holds the global flags every subcommand reads.
type app struct {
	verbosity    int
	format       string
	globalConfig string
	workDir      string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "scaffer",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Resolved(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
			_, err := ui.ParseFormat(a.format)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// The -v shorthand belongs to generate's --var.
	rootCmd.PersistentFlags().CountVar(&a.verbosity, "verbose", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.globalConfig, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&a.workDir, "chdir", "C", "", "Run as if started in this directory")
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "CONFIGURATION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newPullCmd(a))
	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newSetupCmd(a))
	rootCmd.AddCommand(newBarrelCmd(a))
	rootCmd.AddCommand(newGitignoreCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(a, rootCmd))

	tm, err := topics.Load(topicFiles, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   &topics.MarkdownRenderer{Styled: stdoutIsTerminal()},
	})
	if err == nil {
		tm.Install(rootCmd)
	}

	return rootCmd
}

// Execute runs the command tree. A failure is rendered on the failing
// command's error stream in the selected format, and the exit code is
// returned.
func Execute(rootCmd *cobra.Command) int {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}
	if cmd == nil {
		cmd = rootCmd
	}

	flag, _ := rootCmd.PersistentFlags().GetString("format")
	format, ferr := ui.ParseFormat(flag)
	if ferr != nil {
		format = ui.FormatAuto
	}
	renderer, rerr := ui.NewRenderer(format, cmd.ErrOrStderr())
	if rerr != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	_ = renderer.RenderError(err)
	return 1
}

func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// render prints a command result.
func (a *app) render(cmd *cobra.Command, result interface{}) error {
	r, err := a.renderer(cmd)
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

// status writes progress text that is not part of the result. It goes to
// stderr so JSON output stays parseable.
func (a *app) status(cmd *cobra.Command, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

// interactive reports whether the user can answer questions on a terminal.
func (a *app) interactive(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && ui.IsTerminal(f)
}

// asker returns pterm prompts on a terminal and a line reader otherwise.
func (a *app) asker(cmd *cobra.Command) prompt.Asker {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		return prompt.New(f, cmd.ErrOrStderr())
	}
	return prompt.NewLine(in, cmd.ErrOrStderr())
}

// dir returns the --chdir directory or the process working directory.
func (a *app) dir() (string, error) {
	if a.workDir != "" {
		abs, err := filepath.Abs(a.workDir)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, "resolving %s", a.workDir)
		}
		return abs, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIOFailure, "getting working directory")
	}
	return wd, nil
}
