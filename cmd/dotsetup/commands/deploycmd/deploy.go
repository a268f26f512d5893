package deploycmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsetup/internal/cli"
	"github.com/arthur-debert/dotsetup/pkg/deploy"
)

// NewCmd creates the deploy command
func NewCmd(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:     "deploy",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(*opts)
			if err != nil {
				return err
			}

			outcome, err := app.DeployPacks()
			if err != nil {
				cmd.PrintErrln(app.Renderer.RenderError(err))
				return err
			}

			cmd.Println(app.Renderer.RenderOperations(outcome.Ops))
			if deploy.MutatingCount(outcome.Ops) == 0 {
				cmd.Println("Everything already in place")
				return nil
			}
			if opts.DryRun {
				cmd.Printf("Dry run: %d operations planned\n", deploy.MutatingCount(outcome.Ops))
				return nil
			}
			cmd.Println(fmt.Sprintf("%d operations executed", outcome.Result.Executed))
			return nil
		},
	}
}
