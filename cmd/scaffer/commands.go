package scaffer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/scaffer/internal/version"
	"github.com/arthur-debert/scaffer/pkg/commands/add"
	"github.com/arthur-debert/scaffer/pkg/commands/barrel"
	"github.com/arthur-debert/scaffer/pkg/commands/generate"
	"github.com/arthur-debert/scaffer/pkg/commands/gitignore"
	"github.com/arthur-debert/scaffer/pkg/commands/list"
	"github.com/arthur-debert/scaffer/pkg/commands/pull"
	"github.com/arthur-debert/scaffer/pkg/commands/setup"
	"github.com/arthur-debert/scaffer/pkg/commands/show"
	"github.com/arthur-debert/scaffer/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// templateNamesCompletion completes template names for the first argument.
func templateNamesCompletion(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		dir, err := a.dir()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		result, err := list.List(list.ListOptions{WorkDir: dir, GlobalConfig: a.globalConfig})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names := make([]string, 0, len(result.Templates))
		for _, t := range result.Templates {
			names = append(names, t.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		vars    []string
		force   bool
		dry     bool
		prefix  string
		out     string
		noInput bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:               "generate [template]",
		Aliases:           []string{"g"},
		Short:             MsgGenerateShort,
		Long:              MsgGenerateLong,
		Example:           MsgGenerateExample,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: templateNamesCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.dir()
			if err != nil {
				return err
			}

			var template string
			if len(args) == 1 {
				template = args[0]
			} else if template, err = a.pickTemplate(cmd, dir, noInput); err != nil {
				return err
			}

			opts := generate.GenerateOptions{
				Template:     template,
				WorkDir:      dir,
				Destination:  out,
				GlobalConfig: a.globalConfig,
				Variables:    vars,
				Prefix:       prefix,
				Force:        force,
				DryRun:       dry,
				Refresh:      refresh,
				OnFetch:      func(url string) { a.status(cmd, MsgDownloading, url) },
			}
			if !noInput {
				opts.Prompter = a.asker(cmd)
			}

			result, err := generate.Generate(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := a.render(cmd, result); err != nil {
				return err
			}
			if failed := result.Failures(); len(failed) > 0 {
				paths := make([]string, 0, len(failed))
				for _, f := range failed {
					paths = append(paths, f.Path)
				}
				return errors.Newf(errors.ErrIOFailure, MsgErrWriteFailed, len(failed)).WithDetail(errors.DetailPaths, paths)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&vars, "var", "v", nil, MsgFlagVar)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVar(&dry, "dry", false, MsgFlagDry)
	cmd.Flags().StringVar(&prefix, "prefix", "", MsgFlagPrefix)
	cmd.Flags().StringVarP(&out, "out", "o", "", MsgFlagOut)
	cmd.Flags().BoolVar(&noInput, "no-input", false, MsgFlagNoInput)
	cmd.Flags().BoolVar(&refresh, "refresh", false, MsgFlagRefresh)
	return cmd
}

// pickTemplate asks which template to generate when none was named.
func (a *app) pickTemplate(cmd *cobra.Command, dir string, noInput bool) (string, error) {
	if noInput || !a.interactive(cmd) {
		return "", errors.New(errors.ErrInvalidInput, MsgErrNoTemplate)
	}
	result, err := list.List(list.ListOptions{WorkDir: dir, GlobalConfig: a.globalConfig})
	if err != nil {
		return "", err
	}
	if len(result.Templates) == 0 {
		return "", errors.New(errors.ErrTemplateNotFound, MsgNoTemplates)
	}
	names := make([]string, 0, len(result.Templates))
	for _, t := range result.Templates {
		names = append(names, t.Name)
	}
	return a.asker(cmd).Select(cmd.Context(), MsgSelectTemplate, names)
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.dir()
			if err != nil {
				return err
			}
			result, err := list.List(list.ListOptions{WorkDir: dir, GlobalConfig: a.globalConfig})
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var (
		prefix  string
		refresh bool
	)
	cmd := &cobra.Command{
		Use:               "show <template>",
		Short:             MsgShowShort,
		Long:              MsgShowLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: templateNamesCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.dir()
			if err != nil {
				return err
			}
			result, err := show.Show(cmd.Context(), show.ShowOptions{
				Template:     args[0],
				WorkDir:      dir,
				GlobalConfig: a.globalConfig,
				Prefix:       prefix,
				Refresh:      refresh,
				OnFetch:      func(url string) { a.status(cmd, MsgDownloading, url) },
			})
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", MsgFlagPrefix)
	cmd.Flags().BoolVar(&refresh, "refresh", false, MsgFlagRefresh)
	return cmd
}

func newPullCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "pull [template...]",
		Short:             MsgPullShort,
		Long:              MsgPullLong,
		GroupID:           "core",
		ValidArgsFunction: templateNamesCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.dir()
			if err != nil {
				return err
			}
			result, err := pull.Pull(cmd.Context(), pull.PullOptions{
				Names:        args,
				WorkDir:      dir,
				GlobalConfig: a.globalConfig,
				OnFetch:      func(url string) { a.status(cmd, MsgDownloading, url) },
			})
			if result != nil {
				if rerr := a.render(cmd, result); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				return err
			}
			if failed := result.Failed(); len(failed) > 0 {
				return errors.Newf(errors.ErrFetchFailed, MsgErrPullFailed, len(failed))
			}
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add [dir]",
		Short:   MsgAddShort,
		GroupID: "config",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.dir()
			if err != nil {
				return err
			}
			opts := add.AddOptions{WorkDir: dir, GlobalConfig: a.globalConfig}
			if len(args) == 1 {
				opts.Dir = args[0]
			}
			result, err := add.Add(opts)
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func newSetupCmd(a *app) *cobra.Command {
	var toml bool
	cmd := &cobra.Command{
		Use:     "setup",
		Short:   MsgSetupShort,
		Long:    MsgSetupLong,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.dir()
			if err != nil {
				return err
			}
			a.status(cmd, MsgSetupStart)
			result, err := setup.Setup(cmd.Context(), setup.SetupOptions{
				WorkDir: dir,
				TOML:    toml,
				Asker:   a.asker(cmd),
			})
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().BoolVar(&toml, "toml", false, MsgFlagTOML)
	return cmd
}

func newBarrelCmd(a *app) *cobra.Command {
	var dry bool
	cmd := &cobra.Command{
		Use:     "barrel [dir]",
		Short:   MsgBarrelShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.dir()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				dir = joinDir(dir, args[0])
			}
			result, err := barrel.Barrel(barrel.BarrelOptions{Dir: dir, DryRun: dry})
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().BoolVar(&dry, "dry", false, MsgFlagDry)
	return cmd
}

func newGitignoreCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "gitignore [dir]",
		Short:   MsgGitignoreShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.dir()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				dir = joinDir(dir, args[0])
			}
			result, err := gitignore.Gitignore(gitignore.GitignoreOptions{Dir: dir, Force: force})
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagGitForce)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownShell, args[0])
		},
	}
}

func newManCmd(a *app, rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:     "man [dir]",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.dir()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				dir = joinDir(dir, args[0])
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrIOFailure, "creating %s", dir).WithDetail(errors.DetailPath, dir)
			}
			header := &doc.GenManHeader{Title: "SCAFFER", Section: "1"}
			if err := doc.GenManTree(rootCmd, header, dir); err != nil {
				return errors.Wrapf(err, errors.ErrIOFailure, "writing man pages to %s", dir).WithDetail(errors.DetailPath, dir)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", dir)
			return nil
		},
	}
}

func joinDir(base, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}
