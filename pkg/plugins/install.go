// Package plugins clones the shell plugin repositories listed in the
// plugin manifest. Clones are shallow and idempotent: a destination that
// already holds a git repository is skipped.
package plugins

import (
	"context"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/arthur-debert/dotsetup/pkg/logging"
)

// cloneFunc matches git.PlainCloneContext, injected for tests.
type cloneFunc func(ctx context.Context, path string, isBare bool, o *git.CloneOptions) (*git.Repository, error)

// openFunc matches git.PlainOpen, injected for tests.
type openFunc func(path string) (*git.Repository, error)

// Installer clones plugins into a destination directory.
type Installer struct {
	dir   string
	clone cloneFunc
	open  openFunc
}

// NewInstaller creates an Installer cloning into dir.
func NewInstaller(dir string) *Installer {
	return &Installer{
		dir:   dir,
		clone: git.PlainCloneContext,
		open:  git.PlainOpen,
	}
}

// PluginResult records the outcome of one plugin.
type PluginResult struct {
	Plugin  Plugin
	Path    string
	Skipped bool
	Err     error
}

// Report summarizes a plugin install run.
type Report struct {
	Cloned  []PluginResult
	Skipped []PluginResult
	Failed  []PluginResult
}

// InstallAll clones every plugin in the manifest. Failures are
// best-effort: recorded, logged, and the run continues. With force,
// existing clones are removed and re-cloned.
func (i *Installer) InstallAll(ctx context.Context, manifest *Manifest, force bool) Report {
	logger := logging.GetLogger("plugins")
	var report Report

	for _, plugin := range manifest.Plugins {
		dest := filepath.Join(i.dir, plugin.DirName())
		result := PluginResult{Plugin: plugin, Path: dest}

		if _, err := i.open(dest); err == nil {
			if !force {
				result.Skipped = true
				report.Skipped = append(report.Skipped, result)
				logger.Debug().Str("plugin", plugin.Name).Str("path", dest).Msg("Plugin already cloned, skipping")
				continue
			}
			if err := os.RemoveAll(dest); err != nil {
				result.Err = err
				report.Failed = append(report.Failed, result)
				logger.Warn().Err(err).Str("plugin", plugin.Name).Msg("Failed to remove existing clone, continuing")
				continue
			}
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			result.Err = err
			report.Failed = append(report.Failed, result)
			logger.Warn().Err(err).Str("plugin", plugin.Name).Msg("Failed to create plugins directory, continuing")
			continue
		}

		_, err := i.clone(ctx, dest, false, &git.CloneOptions{
			URL:   plugin.Repo,
			Depth: 1,
		})
		if err != nil {
			result.Err = err
			report.Failed = append(report.Failed, result)
			logger.Warn().Err(err).Str("plugin", plugin.Name).Str("repo", plugin.Repo).Msg("Plugin clone failed, continuing")
			continue
		}

		report.Cloned = append(report.Cloned, result)
		logger.Info().Str("plugin", plugin.Name).Str("path", dest).Msg("Plugin cloned")
	}

	return report
}
