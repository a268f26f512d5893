package shellcmd

// Message constants
const (
	MsgShort = "Generate the shell startup files"
	MsgLong  = `The 'shell' command generates ~/.zshrc and the fish config.fish from
fixed templates, wiring in the deployed fragments in their numeric
order. Generated files carry a '# dotsetup:generated' marker and are
only ever rewritten while they carry it; an rc file without the marker
belongs to the user and is left untouched.`

	MsgExample = `  # Generate or refresh the rc files
  dotsetup shell

  # Print the line to add to a hand-maintained .zshrc
  dotsetup shell snippet zsh`

	MsgSnippetShort = "Print the integration snippet for a user-owned rc file"
)
