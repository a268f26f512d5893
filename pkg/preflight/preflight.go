// Package preflight holds the fatal-class checks that must pass before
// the installer touches anything.
package preflight

import (
	"os"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/pkgmgr"
)

// Check runs the fatal-class preflight checks: not root, and the target
// login shell is installed.
func Check(runner pkgmgr.Runner, shell string) error {
	return check(os.Geteuid, runner, shell)
}

// check is the testable core with the euid source injected.
func check(euid func() int, runner pkgmgr.Runner, shell string) error {
	if euid() == 0 {
		return errors.New(errors.ErrRunningAsRoot,
			"refusing to run as root: dotsetup installs into a user's home directory")
	}

	if shell != "" {
		if _, err := runner.LookPath(shell); err != nil {
			return errors.Wrapf(err, errors.ErrShellMissing,
				"required shell %q not found on PATH", shell)
		}
	}

	return nil
}
