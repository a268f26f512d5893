package types

import "path/filepath"

// DeployMethod selects how pack files reach the target directory.
type DeployMethod string

const (
	// DeployCopy copies pack files into the config directory
	DeployCopy DeployMethod = "copy"
	// DeploySymlink links pack files back into the dotfiles repository
	DeploySymlink DeployMethod = "symlink"
)

// Valid reports whether the method is one dotsetup knows how to execute.
func (m DeployMethod) Valid() bool {
	return m == DeployCopy || m == DeploySymlink
}

// Pack is one deployable configuration directory in the dotfiles
// repository, e.g. "fish" or "kitty". Packs have no behavior of their
// own; their contents are consumed by the external tools they configure.
type Pack struct {
	// Name is the directory name under the packs dir
	Name string

	// Path is the absolute path to the pack directory
	Path string

	// Target is the deploy destination relative to XDG_CONFIG_HOME.
	// Defaults to Name; "." deploys the pack's files directly into
	// the config home (used by starship, whose payload is one file).
	Target string
}

// TargetDir resolves the pack's absolute destination under configHome.
func (p Pack) TargetDir(configHome string) string {
	if p.Target == "" {
		return filepath.Join(configHome, p.Name)
	}
	if p.Target == "." {
		return configHome
	}
	return filepath.Join(configHome, p.Target)
}
