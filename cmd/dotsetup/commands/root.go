// Package commands builds the dotsetup command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotsetup/cmd/dotsetup/commands/deploycmd"
	"github.com/arthur-debert/dotsetup/cmd/dotsetup/commands/genconfig"
	"github.com/arthur-debert/dotsetup/cmd/dotsetup/commands/install"
	"github.com/arthur-debert/dotsetup/cmd/dotsetup/commands/packages"
	"github.com/arthur-debert/dotsetup/cmd/dotsetup/commands/plugincmd"
	"github.com/arthur-debert/dotsetup/cmd/dotsetup/commands/shellcmd"
	"github.com/arthur-debert/dotsetup/cmd/dotsetup/commands/statuscmd"
	"github.com/arthur-debert/dotsetup/cmd/dotsetup/commands/topicscmd"
	"github.com/arthur-debert/dotsetup/internal/cli"
	"github.com/arthur-debert/dotsetup/internal/version"
	"github.com/arthur-debert/dotsetup/pkg/logging"
)

// NewRootCmd builds the root command with its global flags and all
// subcommands attached.
func NewRootCmd() *cobra.Command {
	var verbosity int
	opts := &cli.Options{}

	rootCmd := &cobra.Command{
		Use:   "dotsetup",
		Short: "Installer for a terminal-environment dotfiles collection",
		Long: `dotsetup deploys a terminal-environment dotfiles collection (fish, zsh,
kitty, starship, fastfetch, Neovim) into a user's home directory: it
installs packages, clones shell plugins, copies or symlinks the
configuration packs with timestamped backups, and generates the shell
startup files.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&opts.DryRun, "dry-run", false, "Preview changes without executing them")
	rootCmd.PersistentFlags().BoolVar(&opts.Force, "force", false, "Re-clone existing plugins")
	rootCmd.PersistentFlags().BoolVar(&opts.Staged, "staged", false, "Execute the deploy plan through the staged pipeline")

	rootCmd.AddCommand(
		install.NewCmd(opts),
		deploycmd.NewCmd(opts),
		packages.NewCmd(opts),
		plugincmd.NewCmd(opts),
		shellcmd.NewCmd(opts),
		statuscmd.NewCmd(opts),
		genconfig.NewCmd(opts),
		topicscmd.NewCmd(),
		newVersionCmd(),
		newCompletionCmd(),
		newManCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dotsetup version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man [directory]",
		Short:  "Generate man pages",
		Hidden: true,
		Args:   cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			header := &doc.GenManHeader{Title: "DOTSETUP", Section: "1"}
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}
}
