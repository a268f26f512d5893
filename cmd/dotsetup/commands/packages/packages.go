package packages

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsetup/internal/cli"
	"github.com/arthur-debert/dotsetup/pkg/pkgmgr"
	"github.com/arthur-debert/dotsetup/pkg/preflight"
)

// NewCmd creates the packages command
func NewCmd(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:     "packages",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(*opts)
			if err != nil {
				return err
			}

			runner := pkgmgr.NewRunner()
			if err := preflight.Check(runner, ""); err != nil {
				cmd.PrintErrln(app.Renderer.RenderError(err))
				return err
			}

			mgr, err := pkgmgr.Detect(runner)
			if err != nil {
				cmd.PrintErrln(app.Renderer.RenderError(err))
				return err
			}

			if opts.DryRun {
				cmd.Printf("Dry run: would install via %s:\n", mgr.Name)
				for _, name := range app.Config.AllPackages() {
					cmd.Printf("  %s\n", app.Config.PackageName(mgr.Name, name))
				}
				return nil
			}

			report := pkgmgr.InstallAll(cmd.Context(), runner, mgr, app.Config)
			cmd.Println(app.Renderer.RenderPackageReport(report))
			return nil
		},
	}
}
