// Package config loads dotsetup's own configuration: embedded defaults
// layered under an optional dotsetup.toml in the dotfiles root.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Config is the merged installer configuration.
type Config struct {
	Deploy   DeployConfig   `koanf:"deploy" toml:"deploy"`
	Packages PackagesConfig `koanf:"packages" toml:"packages"`
	Shell    ShellConfig    `koanf:"shell" toml:"shell"`
}

// DeployConfig controls configuration deployment.
type DeployConfig struct {
	// Method is "copy" or "symlink"
	Method string `koanf:"method" toml:"method"`

	// Packs is the ordered list of packs to deploy
	Packs []string `koanf:"packs" toml:"packs"`

	// Targets overrides the destination of a pack relative to the
	// config home; "." deploys into the config home itself
	Targets map[string]string `koanf:"targets" toml:"targets"`
}

// PackagesConfig lists the system packages the environment needs.
type PackagesConfig struct {
	// Required packages; failures are still reported, never fatal
	Required []string `koanf:"required" toml:"required"`

	// Extras are optional conveniences
	Extras []string `koanf:"extras" toml:"extras"`

	// Overrides maps manager name -> canonical package -> distro name
	Overrides map[string]map[string]string `koanf:"overrides" toml:"overrides"`
}

// ShellConfig selects the login shell the setup targets.
type ShellConfig struct {
	// Default is the shell that must be present for install to proceed
	Default string `koanf:"default" toml:"default"`
}

// Load builds the effective configuration: embedded defaults, then the
// repo-level dotsetup.toml if one exists at rootConfigPath.
func Load(rootConfigPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	if rootConfigPath != "" {
		if _, err := os.Stat(rootConfigPath); err == nil {
			if err := k.Load(file.Provider(rootConfigPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", rootConfigPath)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the invariants user overrides could break.
func (c *Config) Validate() error {
	if !types.DeployMethod(c.Deploy.Method).Valid() {
		return errors.Newf(errors.ErrConfigValid, "deploy.method must be %q or %q, got %q",
			types.DeployCopy, types.DeploySymlink, c.Deploy.Method)
	}
	if len(c.Deploy.Packs) == 0 {
		return errors.New(errors.ErrConfigValid, "deploy.packs must name at least one pack")
	}
	if c.Shell.Default == "" {
		return errors.New(errors.ErrConfigValid, "shell.default must not be empty")
	}
	return nil
}

// Method returns the deploy method as a typed value.
func (c *Config) Method() types.DeployMethod {
	return types.DeployMethod(c.Deploy.Method)
}

// PackageName resolves the canonical package name for a manager,
// applying per-manager overrides.
func (c *Config) PackageName(manager, canonical string) string {
	if byManager, ok := c.Packages.Overrides[manager]; ok {
		if name, ok := byManager[canonical]; ok {
			return name
		}
	}
	return canonical
}

// AllPackages returns required followed by extras, deduplicated in order.
func (c *Config) AllPackages() []string {
	seen := make(map[string]bool, len(c.Packages.Required)+len(c.Packages.Extras))
	var all []string
	for _, name := range append(append([]string{}, c.Packages.Required...), c.Packages.Extras...) {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		all = append(all, name)
	}
	return all
}
