package genconfig

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsetup/internal/cli"
	"github.com/arthur-debert/dotsetup/pkg/config"
)

// NewCmd creates the genconfig command
func NewCmd(opts *cli.Options) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				cmd.Print(config.DefaultConfigContent())
				return nil
			}

			app, err := cli.NewApp(*opts)
			if err != nil {
				return err
			}
			out, err := config.GenerateTOML(app.Config)
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the built-in defaults instead of the merged configuration")
	return cmd
}
