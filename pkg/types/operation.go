package types

// OperationType defines the type of file system operation
type OperationType string

const (
	// OperationCreateSymlink creates a symbolic link
	OperationCreateSymlink OperationType = "create_symlink"

	// OperationCreateDir creates a directory
	OperationCreateDir OperationType = "create_dir"

	// OperationCopyFile copies a file
	OperationCopyFile OperationType = "copy_file"

	// OperationWriteFile writes content to a file
	OperationWriteFile OperationType = "write_file"

	// OperationBackupRename moves a conflicting target into the backup dir
	OperationBackupRename OperationType = "backup_rename"
)

// OperationStatus defines the state of an operation
type OperationStatus string

const (
	// StatusReady means the operation is ready to be executed
	StatusReady OperationStatus = "ready"
	// StatusSkipped means the operation was skipped (already satisfied)
	StatusSkipped OperationStatus = "skipped"
	// StatusConflict means the operation cannot be performed safely
	StatusConflict OperationStatus = "conflict"
)

// Operation represents a single low-level filesystem operation produced
// by the deploy planner. Operations are inert until an executor runs them,
// which is what makes --dry-run a pure formatting exercise.
type Operation struct {
	// Type is the type of operation
	Type OperationType

	// Source is the source path (for symlinks, copies, backup renames)
	Source string

	// Target is the target path
	Target string

	// Content is the content to write (for write operations)
	Content string

	// Mode is the file permissions (optional)
	Mode *uint32

	// Pack is the pack this operation belongs to, if any
	Pack string

	// Description is a human-readable description
	Description string

	// Status is the current state of the operation
	Status OperationStatus
}

// Mutating reports whether executing the operation would change the
// filesystem. Skipped and conflicted operations never do.
func (o Operation) Mutating() bool {
	return o.Status == StatusReady
}
