package packages

// Message constants
const (
	MsgShort = "Install the package set via the system package manager"
	MsgLong  = `The 'packages' command detects the system package manager (apt-get,
dnf, pacman or brew, in that order) and installs the configured
package set through it. Individual package failures are warnings;
the command only fails when no package manager is found or when
running as root.`

	MsgExample = `  # Install everything
  dotsetup packages

  # List what would be installed
  dotsetup packages --dry-run`
)
