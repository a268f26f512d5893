package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotsetup/pkg/filesystem"
	"github.com/arthur-debert/dotsetup/pkg/paths"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// TestEnvironment is an isolated dotfiles setup under a temp dir, with
// HOME and the XDG variables pointed inside it.
type TestEnvironment struct {
	DotfilesRoot string
	HomeDir      string
	ConfigHome   string
	DataDir      string

	FS    types.FS
	Paths paths.Paths

	t *testing.T
}

// NewTestEnvironment builds an isolated environment rooted in t.TempDir.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tempDir := t.TempDir()
	env := &TestEnvironment{
		DotfilesRoot: filepath.Join(tempDir, "repo"),
		HomeDir:      filepath.Join(tempDir, "home"),
		t:            t,
	}
	env.ConfigHome = filepath.Join(env.HomeDir, ".config")
	env.DataDir = filepath.Join(env.HomeDir, ".local", "share", "dotsetup")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_DATA_HOME", filepath.Join(env.HomeDir, ".local", "share"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(env.HomeDir, ".local", "state"))
	t.Setenv("DOTFILES_ROOT", env.DotfilesRoot)

	env.FS = filesystem.NewOS()
	if err := env.FS.MkdirAll(filepath.Join(env.DotfilesRoot, paths.PacksDirName), 0755); err != nil {
		t.Fatalf("failed to create packs dir: %v", err)
	}
	if err := env.FS.MkdirAll(env.ConfigHome, 0755); err != nil {
		t.Fatalf("failed to create config home: %v", err)
	}

	p, err := paths.New(env.DotfilesRoot)
	if err != nil {
		t.Fatalf("failed to create paths: %v", err)
	}
	env.Paths = p

	return env
}

// CreatePack writes a pack directory with the given relative files.
func (e *TestEnvironment) CreatePack(name string, files map[string]string) types.Pack {
	e.t.Helper()

	packPath := filepath.Join(e.DotfilesRoot, paths.PacksDirName, name)
	for rel, content := range files {
		full := filepath.Join(packPath, rel)
		if err := e.FS.MkdirAll(filepath.Dir(full), 0755); err != nil {
			e.t.Fatalf("failed to create pack dir: %v", err)
		}
		if err := e.FS.WriteFile(full, []byte(content), 0644); err != nil {
			e.t.Fatalf("failed to write pack file: %v", err)
		}
	}
	return types.Pack{Name: name, Path: packPath}
}

// WriteFile writes a file at an absolute path, creating parents.
func (e *TestEnvironment) WriteFile(path, content string) {
	e.t.Helper()
	if err := e.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := e.FS.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", path, err)
	}
}
