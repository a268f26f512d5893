package deploycmd

// Message constants
const (
	MsgShort = "Deploy the configuration packs"
	MsgLong  = `The 'deploy' command copies or symlinks the configuration packs into
the config directory. Anything already in the way is renamed into a
timestamped backup directory first. Re-running against an unchanged
tree is a no-op: no operations, no new backups.`

	MsgExample = `  # Deploy all configured packs
  dotsetup deploy

  # See the plan without executing it
  dotsetup deploy --dry-run`
)
