package shellcmd

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsetup/internal/cli"
	"github.com/arthur-debert/dotsetup/pkg/shellrc"
)

// NewCmd creates the shell command and its snippet subcommand
func NewCmd(opts *cli.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shell",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(*opts)
			if err != nil {
				return err
			}

			outcomes, err := app.GenerateRcFiles()
			if err != nil {
				cmd.PrintErrln(app.Renderer.RenderError(err))
				return err
			}

			for _, rc := range outcomes {
				cmd.Printf("%-10s %s\n", rc.State, rc.Path)
				if rc.State == shellrc.StateUserOwned {
					cmd.Printf("  add by hand: %s\n", shellrc.Snippet(shellFor(rc.Path), app.ZshFragmentsDir()))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newSnippetCmd(opts))
	return cmd
}

func newSnippetCmd(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:       "snippet [zsh|fish]",
		Short:     MsgSnippetShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(*opts)
			if err != nil {
				return err
			}
			shell := "zsh"
			if len(args) == 1 {
				shell = args[0]
			}
			cmd.Println(shellrc.Snippet(shell, app.ZshFragmentsDir()))
			return nil
		},
	}
}

// shellFor guesses the shell an rc path belongs to, for snippet output.
func shellFor(rcPath string) string {
	if len(rcPath) >= 5 && rcPath[len(rcPath)-5:] == ".fish" {
		return "fish"
	}
	return "zsh"
}
