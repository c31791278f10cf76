package pypath

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pypath/internal/version"
	"github.com/arthur-debert/pypath/pkg/config"
	"github.com/arthur-debert/pypath/pkg/dispatcher"
	"github.com/arthur-debert/pypath/pkg/logging"
	"github.com/arthur-debert/pypath/pkg/paths"
	"github.com/arthur-debert/pypath/pkg/shell"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&globalOptions{})
}

func newRootCmd(opts *globalOptions) *cobra.Command {
	initTemplateFormatting()

	var add, del, listAll, pathFile bool

	rootCmd := &cobra.Command{
		Use:     "pypath [PATH|INDEX]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := dispatcher.FromFlags(add, del, listAll, pathFile, args)
			if err != nil {
				return err
			}
			return opts.runRequest(cmd, req)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&opts.filename, "filename", "", MsgFlagFilename)
	rootCmd.PersistentFlags().StringVar(&opts.siteDir, "site-dir", "", MsgFlagSiteDir)
	rootCmd.PersistentFlags().StringVar(&opts.python, "python", "", MsgFlagPython)

	// Single-letter action flags
	rootCmd.Flags().BoolVarP(&add, "add", "a", false, MsgFlagAdd)
	rootCmd.Flags().BoolVarP(&del, "delete", "d", false, MsgFlagDelete)
	rootCmd.Flags().BoolVarP(&listAll, "list-all", "l", false, MsgFlagListAll)
	rootCmd.Flags().BoolVarP(&pathFile, "path-file", "p", false, MsgFlagPathFile)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "paths",
		Title: "PATH COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetCompletionCommandGroupID("misc")

	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newDeleteCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newListAllCmd(opts))
	rootCmd.AddCommand(newPathFileCmd(opts))
	rootCmd.AddCommand(newShellCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func actionRunE(opts *globalOptions, action dispatcher.Action) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return opts.runRequest(cmd, dispatcher.Request{Action: action, Args: args})
	}
}

func newAddCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "add [PATH]",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: "  pypath add\n  pypath add ../lib",
		GroupID: "paths",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: actionRunE(opts, dispatcher.ActionAdd),
	}
}

func newDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "delete [PATH|INDEX]",
		Aliases:           []string{"del"},
		Short:             MsgDeleteShort,
		Long:              MsgDeleteLong,
		Example:           "  pypath delete 0\n  pypath del ~/src/project",
		GroupID:           "paths",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: opts.userPathCompletion,
		RunE:              actionRunE(opts, dispatcher.ActionDelete),
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "paths",
		Args:    cobra.NoArgs,
		RunE:    actionRunE(opts, dispatcher.ActionList),
	}
}

func newListAllCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list-all",
		Short:   MsgListAllShort,
		GroupID: "paths",
		Args:    cobra.NoArgs,
		RunE:    actionRunE(opts, dispatcher.ActionListAll),
	}
}

func newPathFileCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "path-file",
		Short:   MsgPathFileShort,
		GroupID: "paths",
		Args:    cobra.NoArgs,
		RunE:    actionRunE(opts, dispatcher.ActionPathFile),
	}
}

// userPathCompletion completes the current user paths for delete.
func (o *globalOptions) userPathCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	a, err := o.newApp()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	d, err := a.dispatcher()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	result, err := d.Run(dispatcher.Request{Action: dispatcher.ActionList})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	completions := make([]string, 0, len(result.Entries))
	for _, e := range result.Entries {
		completions = append(completions, fmt.Sprintf("%s\t%d", e.Path, e.Index))
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

func newShellCmd(opts *globalOptions) *cobra.Command {
	var noPrompt bool

	cmd := &cobra.Command{
		Use:     "shell",
		Short:   MsgShellShort,
		Long:    MsgShellLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp()
			if err != nil {
				return err
			}
			session, err := shell.NewSession(shell.Options{
				Store:    a.storeOptions(),
				Runtime:  a.runtime,
				Printer:  a.renderer,
				NoPrompt: noPrompt || !stdoutIsTerminal(),
			})
			if err != nil {
				return fmt.Errorf(MsgErrShell, err)
			}
			return session.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, MsgFlagNoPrompt)
	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				location := opts.configFile
				if location == "" {
					location = paths.DefaultConfigFilePath()
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), location)
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			out, err := config.Render(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&showPath, "path", false, MsgFlagPath)
	return cmd
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
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}
