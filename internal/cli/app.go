// Package cli assembles the shared runtime every subcommand needs:
// resolved paths, loaded configuration, a filesystem, and the renderer.
package cli

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotsetup/pkg/config"
	"github.com/arthur-debert/dotsetup/pkg/deploy"
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/filesystem"
	"github.com/arthur-debert/dotsetup/pkg/packs"
	"github.com/arthur-debert/dotsetup/pkg/paths"
	"github.com/arthur-debert/dotsetup/pkg/style"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Options are the global flags shared by all subcommands.
type Options struct {
	DryRun bool
	Force  bool
	Staged bool
}

// App is the assembled runtime.
type App struct {
	Paths    paths.Paths
	Config   *config.Config
	FS       types.FS
	Renderer *style.Renderer
	Opts     Options
}

// NewApp resolves paths and loads configuration.
func NewApp(opts Options) (*App, error) {
	p, err := paths.New("")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p.RootConfigPath())
	if err != nil {
		return nil, err
	}

	return &App{
		Paths:    p,
		Config:   cfg,
		FS:       filesystem.NewOS(),
		Renderer: style.NewRenderer(),
		Opts:     opts,
	}, nil
}

// Packs discovers the configured packs.
func (a *App) Packs() ([]types.Pack, error) {
	return packs.Discover(a.FS, a.Paths.PacksDir(), a.Config.Deploy.Packs, a.Config.Deploy.Targets)
}

// Executor picks the deploy executor: direct by default, the synthfs
// pipeline with --staged.
func (a *App) Executor() deploy.Executor {
	if a.Opts.Staged {
		return deploy.NewSynthfsExecutor(a.Opts.DryRun)
	}
	return deploy.NewDirectExecutor(a.FS, a.Opts.DryRun)
}

// ZshFragmentsDir is where the zsh pack's fragments live after deploy.
func (a *App) ZshFragmentsDir() string {
	target := a.Config.Deploy.Targets["zsh"]
	pack := types.Pack{Name: "zsh", Target: target}
	return pack.TargetDir(a.Paths.ConfigHome())
}

// ZshrcPath is the generated zsh rc location.
func (a *App) ZshrcPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to resolve home directory")
	}
	return filepath.Join(home, ".zshrc"), nil
}

// FishConfigPath is the generated fish rc location.
func (a *App) FishConfigPath() string {
	return filepath.Join(a.Paths.ConfigHome(), "fish", "config.fish")
}
