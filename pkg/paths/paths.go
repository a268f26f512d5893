// Package paths provides centralized path handling for dotsetup.
// It implements XDG Base Directory compliance and owns the naming of
// deployment backup directories.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for the
	// dotfiles repository location
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvDataDir overrides the XDG data directory for dotsetup
	EnvDataDir = "DOTSETUP_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for dotsetup
	EnvStateDir = "DOTSETUP_STATE_DIR"
)

// Directory and file names. These define dotsetup's layout and are not
// user-configurable; user-facing knobs belong in pkg/config.
const (
	// PacksDirName is the directory inside the dotfiles root holding packs
	PacksDirName = "dotfiles"

	// AppDirName is the directory name for dotsetup-specific files
	AppDirName = "dotsetup"

	// PluginsDirName is the subdirectory of the data dir for cloned plugins
	PluginsDirName = "plugins"

	// BackupDirPrefix prefixes per-run backup directories in the config home
	BackupDirPrefix = "config_backup_"

	// RootConfigFile is the installer config file in the dotfiles root
	RootConfigFile = "dotsetup.toml"

	// PluginManifestFile is the plugin manifest override in the dotfiles root
	PluginManifestFile = "plugins.yaml"
)

// Paths resolves every location dotsetup reads or writes.
type Paths interface {
	types.Pather

	// UsedFallback reports that the dotfiles root fell back to the cwd
	UsedFallback() bool

	// PackPath returns the absolute path of a named pack
	PackPath(packName string) string

	// PluginsDir returns the directory plugin repositories are cloned into
	PluginsDir() string

	// RootConfigPath returns the installer config file in the dotfiles root
	RootConfigPath() string

	// PluginManifestPath returns the manifest override in the dotfiles root
	PluginManifestPath() string

	// NextBackupDir picks an unused backup directory name for this run.
	// Uniqueness under timestamp collisions is resolved with integer
	// suffixes: config_backup_<ts>, config_backup_<ts>-1, and so on.
	NextBackupDir(fs types.FS, unixTimestamp int64) (string, error)
}

type paths struct {
	dotfilesRoot string
	configHome   string
	dataDir      string
	stateDir     string
	usedFallback bool
}

// New creates a Paths instance rooted at dotfilesRoot. An empty root is
// resolved from DOTFILES_ROOT, falling back to the current directory when
// it contains a packs dir.
func New(dotfilesRoot string) (Paths, error) {
	p := &paths{}

	if dotfilesRoot == "" {
		root, usedFallback, err := findDotfilesRoot()
		if err != nil {
			return nil, err
		}
		p.dotfilesRoot = root
		p.usedFallback = usedFallback
	} else {
		p.dotfilesRoot = expandHome(dotfilesRoot)
	}

	absRoot, err := filepath.Abs(p.dotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles root")
	}
	p.dotfilesRoot = absRoot

	p.configHome = configHome()
	p.dataDir = overridableDir(EnvDataDir, filepath.Join(dataHome(), AppDirName))
	p.stateDir = overridableDir(EnvStateDir, filepath.Join(stateHome(), AppDirName))

	return p, nil
}

func (p *paths) DotfilesRoot() string { return p.dotfilesRoot }
func (p *paths) UsedFallback() bool   { return p.usedFallback }
func (p *paths) ConfigHome() string   { return p.configHome }
func (p *paths) DataDir() string      { return p.dataDir }
func (p *paths) StateDir() string     { return p.stateDir }

func (p *paths) PacksDir() string {
	return filepath.Join(p.dotfilesRoot, PacksDirName)
}

func (p *paths) PackPath(packName string) string {
	return filepath.Join(p.PacksDir(), packName)
}

func (p *paths) PluginsDir() string {
	return filepath.Join(p.dataDir, PluginsDirName)
}

func (p *paths) RootConfigPath() string {
	return filepath.Join(p.dotfilesRoot, RootConfigFile)
}

func (p *paths) PluginManifestPath() string {
	return filepath.Join(p.dotfilesRoot, PluginManifestFile)
}

func (p *paths) NextBackupDir(fs types.FS, unixTimestamp int64) (string, error) {
	base := filepath.Join(p.configHome, fmt.Sprintf("%s%d", BackupDirPrefix, unixTimestamp))
	candidate := base
	for suffix := 1; ; suffix++ {
		if _, err := fs.Lstat(candidate); err != nil {
			if os.IsNotExist(err) {
				return candidate, nil
			}
			return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to probe backup dir %s", candidate)
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}

// findDotfilesRoot resolves the dotfiles root from the environment, with
// a cwd fallback when the cwd looks like a dotfiles repository.
func findDotfilesRoot() (root string, usedFallback bool, err error) {
	if envRoot := os.Getenv(EnvDotfilesRoot); envRoot != "" {
		return expandHome(envRoot), false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
	}
	if info, statErr := os.Stat(filepath.Join(cwd, PacksDirName)); statErr == nil && info.IsDir() {
		return cwd, true, nil
	}

	return "", false, errors.Newf(errors.ErrNotFound,
		"no dotfiles root: set %s or run from a directory containing %s/", EnvDotfilesRoot, PacksDirName)
}

// expandHome expands a leading ~/ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// The xdg package caches values at init time, so environment overrides
// set later (tests use t.Setenv) are honored by checking the variables
// directly before consulting xdg.
func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config")
	}
	return xdg.ConfigHome
}

func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "share")
	}
	return xdg.DataHome
}

func stateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "state")
	}
	return xdg.StateHome
}

func overridableDir(envVar, fallback string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return expandHome(dir)
	}
	return fallback
}
