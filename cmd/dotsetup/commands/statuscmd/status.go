package statuscmd

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsetup/internal/cli"
	"github.com/arthur-debert/dotsetup/pkg/plugins"
	"github.com/arthur-debert/dotsetup/pkg/status"
	"github.com/arthur-debert/dotsetup/pkg/style"
)

// NewCmd creates the status command
func NewCmd(opts *cli.Options) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(*opts)
			if err != nil {
				return err
			}

			checker := status.NewChecker(app.FS, app.Config.Method(), app.Paths.ConfigHome())

			packList, err := app.Packs()
			if err != nil {
				cmd.PrintErrln(app.Renderer.RenderError(err))
				return err
			}
			var packReports []status.PackReport
			for _, pack := range packList {
				report, err := checker.CheckPack(pack)
				if err != nil {
					cmd.PrintErrln(app.Renderer.RenderError(err))
					return err
				}
				packReports = append(packReports, report)
			}
			cmd.Println(style.Title("Packs"))
			cmd.Println(app.Renderer.RenderPackReports(packReports))

			zshrcPath, err := app.ZshrcPath()
			if err != nil {
				return err
			}
			rcReports := []status.RcReport{
				checker.CheckRc(zshrcPath),
				checker.CheckRc(app.FishConfigPath()),
			}
			cmd.Println(style.Title("Startup files"))
			cmd.Println(app.Renderer.RenderRcReports(rcReports))

			manifest, err := plugins.LoadManifest(app.Paths.PluginManifestPath())
			if err != nil {
				cmd.PrintErrln(app.Renderer.RenderError(err))
				return err
			}
			cmd.Println(style.Title("Plugins"))
			cmd.Println(app.Renderer.RenderPluginStatus(checker.CheckPlugins(manifest, app.Paths.PluginsDir())))

			return nil
		},
	}
}
