package topicscmd

// Message constants
const (
	MsgShort = "Read the bundled documentation in the terminal"
	MsgLong  = `The 'topics' command lists and renders the bundled documentation:
the policy conventions behind the configuration, like the modifier-key
ownership split and the fzf wiring.`

	MsgExample = `  # List topics
  dotsetup topics

  # Read one
  dotsetup topics keybindings`
)
