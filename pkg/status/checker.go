// Package status reports the observable state of the environment: what
// each pack would need to reach its target, whether plugins are cloned,
// and who owns the rc files. Everything is derived from the filesystem;
// dotsetup keeps no state database.
package status

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotsetup/pkg/deploy"
	"github.com/arthur-debert/dotsetup/pkg/plugins"
	"github.com/arthur-debert/dotsetup/pkg/shellrc"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// PackState classifies a pack's deployment.
type PackState string

const (
	// StateDeployed means every file is already in place
	StateDeployed PackState = "deployed"
	// StatePartial means some files are in place
	StatePartial PackState = "partial"
	// StateMissing means nothing is deployed yet
	StateMissing PackState = "missing"
	// StateConflicted means pre-existing files would need backing up
	StateConflicted PackState = "conflicted"
)

// PackReport is the status of one pack.
type PackReport struct {
	Pack      types.Pack
	State     PackState
	InPlace   int
	Pending   int
	Conflicts int
}

// RcState classifies an rc file.
type RcState string

const (
	// RcGenerated means dotsetup owns the file
	RcGenerated RcState = "generated"
	// RcUserOwned means the file exists without a marker
	RcUserOwned RcState = "user-owned"
	// RcMissing means the file does not exist
	RcMissing RcState = "missing"
	// RcUnknown means the file could not be inspected (e.g. permissions)
	RcUnknown RcState = "unknown"
)

// RcReport is the status of one rc file.
type RcReport struct {
	Path  string
	State RcState
}

// PluginReport is the status of one plugin clone.
type PluginReport struct {
	Plugin plugins.Plugin
	Path   string
	Cloned bool
}

// Checker derives status reports from the filesystem.
type Checker struct {
	fs         types.FS
	method     types.DeployMethod
	configHome string
}

// NewChecker creates a Checker.
func NewChecker(fs types.FS, method types.DeployMethod, configHome string) *Checker {
	return &Checker{fs: fs, method: method, configHome: configHome}
}

// CheckPack plans the pack against a throwaway backup dir and summarizes
// what the plan says: an all-skipped plan is a deployed pack.
func (c *Checker) CheckPack(pack types.Pack) (PackReport, error) {
	planner := deploy.NewPlanner(c.fs, c.method, c.configHome, filepath.Join(c.configHome, "config_backup_probe"))
	ops, err := planner.Plan([]types.Pack{pack})
	if err != nil {
		return PackReport{}, err
	}

	report := PackReport{Pack: pack}
	for _, op := range ops {
		switch op.Type {
		case types.OperationCopyFile, types.OperationCreateSymlink:
			if op.Status == types.StatusSkipped {
				report.InPlace++
			} else {
				report.Pending++
			}
		case types.OperationBackupRename:
			report.Conflicts++
		}
	}

	switch {
	case report.Conflicts > 0:
		report.State = StateConflicted
	case report.Pending == 0:
		report.State = StateDeployed
	case report.InPlace == 0:
		report.State = StateMissing
	default:
		report.State = StatePartial
	}
	return report, nil
}

// CheckRc reports who owns the rc file at path. A file that cannot be
// inspected is unknown, never user-owned: misreporting it as user-owned
// would tell the user to integrate by hand for no reason.
func (c *Checker) CheckRc(path string) RcReport {
	if _, err := c.fs.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return RcReport{Path: path, State: RcMissing}
		}
		return RcReport{Path: path, State: RcUnknown}
	}
	if shellrc.IsGenerated(c.fs, path) {
		return RcReport{Path: path, State: RcGenerated}
	}
	return RcReport{Path: path, State: RcUserOwned}
}

// CheckPlugins reports which manifest plugins are cloned under pluginsDir.
func (c *Checker) CheckPlugins(manifest *plugins.Manifest, pluginsDir string) []PluginReport {
	var reports []PluginReport
	for _, plugin := range manifest.Plugins {
		path := filepath.Join(pluginsDir, plugin.DirName())
		_, err := c.fs.Stat(filepath.Join(path, ".git"))
		reports = append(reports, PluginReport{
			Plugin: plugin,
			Path:   path,
			Cloned: err == nil,
		})
	}
	return reports
}
