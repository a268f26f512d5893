package genconfig

// Message constants
const (
	MsgShort = "Print the effective configuration as TOML"
	MsgLong  = `The 'genconfig' command prints the merged installer configuration
(built-in defaults layered under dotsetup.toml in the dotfiles root).
The output is valid dotsetup.toml content, so it can seed a repo-level
override file.`

	MsgExample = `  # Inspect the effective configuration
  dotsetup genconfig

  # Seed a repo-level override
  dotsetup genconfig --defaults > dotsetup.toml`
)
