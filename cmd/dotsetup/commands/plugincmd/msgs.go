package plugincmd

// Message constants
const (
	MsgShort = "Clone the shell plugin repositories"
	MsgLong  = `The 'plugins' command clones the plugin repositories listed in the
manifest (plugins.yaml in the dotfiles root, or the built-in default)
into the data directory. Clones are shallow. Destinations that already
hold a git repository are skipped; --force re-clones them. Per-plugin
failures are warnings.`

	MsgExample = `  # Clone missing plugins
  dotsetup plugins

  # Re-clone everything from scratch
  dotsetup plugins --force`
)
