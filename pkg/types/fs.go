package types

import (
	"io/fs"
)

// FS is the filesystem interface required for dotsetup operations.
// Implementations live in pkg/filesystem (os-backed and afero-backed).
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error

	// Lstat can fall back to Stat on filesystems without symlink support
	Lstat(name string) (fs.FileInfo, error)
}

// Pather provides the directory layout dotsetup operates on.
type Pather interface {
	// DotfilesRoot returns the root of the dotfiles repository
	DotfilesRoot() string

	// PacksDir returns the directory holding the configuration packs
	PacksDir() string

	// ConfigHome returns the user's XDG config directory (deploy target)
	ConfigHome() string

	// DataDir returns the XDG data directory for dotsetup
	DataDir() string

	// StateDir returns the XDG state directory for dotsetup
	StateDir() string
}
