package plugincmd

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsetup/internal/cli"
	"github.com/arthur-debert/dotsetup/pkg/plugins"
)

// NewCmd creates the plugins command
func NewCmd(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:     "plugins",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(*opts)
			if err != nil {
				return err
			}

			manifest, err := plugins.LoadManifest(app.Paths.PluginManifestPath())
			if err != nil {
				cmd.PrintErrln(app.Renderer.RenderError(err))
				return err
			}

			if opts.DryRun {
				cmd.Printf("Dry run: would clone into %s:\n", app.Paths.PluginsDir())
				for _, plugin := range manifest.Plugins {
					cmd.Printf("  %s (%s)\n", plugin.Name, plugin.Repo)
				}
				return nil
			}

			installer := plugins.NewInstaller(app.Paths.PluginsDir())
			report := installer.InstallAll(cmd.Context(), manifest, opts.Force)
			cmd.Println(app.Renderer.RenderPluginReport(report))
			return nil
		},
	}
}
