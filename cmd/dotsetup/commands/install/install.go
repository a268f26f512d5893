package install

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsetup/internal/cli"
	"github.com/arthur-debert/dotsetup/pkg/pkgmgr"
	"github.com/arthur-debert/dotsetup/pkg/plugins"
	"github.com/arthur-debert/dotsetup/pkg/preflight"
	"github.com/arthur-debert/dotsetup/pkg/style"
)

// NewCmd creates the install command
func NewCmd(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:     "install",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(*opts)
			if err != nil {
				return renderErr(cmd, app, err)
			}

			runner := pkgmgr.NewRunner()
			if err := preflight.Check(runner, app.Config.Shell.Default); err != nil {
				return renderErr(cmd, app, err)
			}

			// Packages: manager detection is fatal, individual installs
			// are best-effort.
			mgr, err := pkgmgr.Detect(runner)
			if err != nil {
				return renderErr(cmd, app, err)
			}
			if opts.DryRun {
				cmd.Printf("Dry run: would install via %s: %v\n", mgr.Name, app.Config.AllPackages())
			} else {
				report := pkgmgr.InstallAll(cmd.Context(), runner, mgr, app.Config)
				cmd.Println(app.Renderer.RenderPackageReport(report))
			}

			// Plugins: best-effort throughout.
			manifest, err := plugins.LoadManifest(app.Paths.PluginManifestPath())
			if err != nil {
				return renderErr(cmd, app, err)
			}
			if opts.DryRun {
				cmd.Printf("Dry run: would clone %d plugins into %s\n", len(manifest.Plugins), app.Paths.PluginsDir())
			} else {
				installer := plugins.NewInstaller(app.Paths.PluginsDir())
				report := installer.InstallAll(cmd.Context(), manifest, opts.Force)
				cmd.Println(app.Renderer.RenderPluginReport(report))
			}

			// Configuration deployment.
			outcome, err := app.DeployPacks()
			if err != nil {
				return renderErr(cmd, app, err)
			}
			cmd.Println(style.Title("Deploy"))
			cmd.Println(app.Renderer.RenderOperations(outcome.Ops))
			cmd.Println(deploySummary(outcome))

			// Shell startup files.
			rcOutcomes, err := app.GenerateRcFiles()
			if err != nil {
				return renderErr(cmd, app, err)
			}
			for _, rc := range rcOutcomes {
				cmd.Printf("%s %s\n", rc.State, rc.Path)
			}

			return nil
		},
	}
}

func deploySummary(outcome *cli.DeployOutcome) string {
	if outcome.Result.Executed == 0 {
		return style.Muted("Everything already in place")
	}
	return fmt.Sprintf("%d operations executed, %d already satisfied",
		outcome.Result.Executed, outcome.Result.Skipped)
}

func renderErr(cmd *cobra.Command, app *cli.App, err error) error {
	if app != nil {
		cmd.PrintErrln(app.Renderer.RenderError(err))
	}
	return err
}
