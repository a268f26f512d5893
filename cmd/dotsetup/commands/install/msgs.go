package install

// Message constants
const (
	MsgShort = "Run the full setup: packages, plugins, configs, shell wiring"
	MsgLong  = `The 'install' command runs the complete setup end to end:
  - Preflight checks (refuses to run as root, requires the target shell)
  - Installs the package set via the detected package manager
  - Clones the shell plugin repositories
  - Deploys the configuration packs, backing up anything in the way
  - Generates the shell startup files

Failures installing an individual package or plugin are warnings; the
run continues. Only preflight failures abort.`

	MsgExample = `  # Full setup
  dotsetup install

  # Preview everything without touching the system
  dotsetup install --dry-run`
)
