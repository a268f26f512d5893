package statuscmd

// Message constants
const (
	MsgShort = "Report what is deployed, cloned, and generated"
	MsgLong  = `The 'status' command reports the observable state of the setup: for
each pack whether its files are in place, pending or conflicting; who
owns the startup files; and which plugins are cloned. Everything is
read from the filesystem; dotsetup keeps no state database.`

	MsgExample = `  dotsetup status`
)
