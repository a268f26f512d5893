// Package pkgmgr detects the system package manager and installs the
// configured package set through it. Installation is best-effort: a
// failing package logs a warning and the run continues.
package pkgmgr

import (
	"context"
	"os/exec"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
)

// Runner abstracts subprocess execution so tests can fake the package
// manager.
type Runner interface {
	// LookPath reports whether a binary exists on PATH
	LookPath(name string) (string, error)

	// Run executes a command and returns its combined output
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner is the real Runner backed by os/exec
type execRunner struct{}

// NewRunner returns the os/exec-backed Runner
func NewRunner() Runner {
	return &execRunner{}
}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Manager describes one supported package manager.
type Manager struct {
	// Name is the canonical manager name used in config override tables
	Name string

	// Binary is the executable probed for during detection
	Binary string

	// InstallArgs are the non-interactive install arguments
	InstallArgs []string

	// NeedsSudo prepends sudo for system-wide managers
	NeedsSudo bool
}

// managers in detection order; first present binary wins.
var managers = []Manager{
	{Name: "apt", Binary: "apt-get", InstallArgs: []string{"install", "-y"}, NeedsSudo: true},
	{Name: "dnf", Binary: "dnf", InstallArgs: []string{"install", "-y"}, NeedsSudo: true},
	{Name: "pacman", Binary: "pacman", InstallArgs: []string{"-S", "--noconfirm", "--needed"}, NeedsSudo: true},
	{Name: "brew", Binary: "brew", InstallArgs: []string{"install"}, NeedsSudo: false},
}

// Detect probes for a supported package manager, in order.
func Detect(runner Runner) (*Manager, error) {
	logger := logging.GetLogger("pkgmgr")
	for i := range managers {
		m := managers[i]
		if _, err := runner.LookPath(m.Binary); err == nil {
			logger.Debug().Str("manager", m.Name).Str("binary", m.Binary).Msg("Detected package manager")
			return &m, nil
		}
	}
	return nil, errors.New(errors.ErrNoPackageManager,
		"no supported package manager found (looked for apt-get, dnf, pacman, brew)")
}

// InstallCommand builds the argv to install a single package.
func (m Manager) InstallCommand(pkg string) (string, []string) {
	args := append(append([]string{}, m.InstallArgs...), pkg)
	if m.NeedsSudo {
		return "sudo", append([]string{m.Binary}, args...)
	}
	return m.Binary, args
}
