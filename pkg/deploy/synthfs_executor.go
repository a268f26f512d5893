package deploy

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// SynthfsExecutor executes a plan through a synthfs pipeline: operations
// are validated as a batch before anything runs. Backup renames happen
// up front with plain renames since synthfs has no move operation.
type SynthfsExecutor struct {
	logger     zerolog.Logger
	dryRun     bool
	filesystem synthfs.FileSystem
}

// NewSynthfsExecutor creates a synthfs-based executor against the real
// filesystem rooted at /.
func NewSynthfsExecutor(dryRun bool) *SynthfsExecutor {
	return NewSynthfsExecutorWithFS(filesystem.NewOSFileSystem("/"), dryRun)
}

// NewSynthfsExecutorWithFS creates a synthfs-based executor running its
// pipeline against fs. Operation paths are converted relative to /, so
// fs must be rooted there.
func NewSynthfsExecutorWithFS(fs synthfs.FileSystem, dryRun bool) *SynthfsExecutor {
	return &SynthfsExecutor{
		logger:     logging.GetLogger("deploy.synthfs"),
		dryRun:     dryRun,
		filesystem: fs,
	}
}

// Execute implements Executor.
func (e *SynthfsExecutor) Execute(ops []types.Operation) (Result, error) {
	var result Result

	if e.dryRun {
		for _, op := range ops {
			if op.Mutating() {
				e.logger.Info().Str("type", string(op.Type)).Str("target", op.Target).Msg("Dry run: " + op.Description)
			}
			result.Skipped++
		}
		return result, nil
	}

	// Backup renames run first, outside the pipeline, so the pipeline
	// validation never sees the conflicting targets.
	for _, op := range ops {
		if !op.Mutating() {
			result.Skipped++
			continue
		}
		if op.Type != types.OperationBackupRename {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(op.Target), 0755); err != nil {
			return result, errors.Wrapf(err, errors.ErrBackupCreate, "failed to create backup dir for %s", op.Target)
		}
		if err := os.Rename(op.Source, op.Target); err != nil {
			return result, errors.Wrapf(err, errors.ErrBackupCreate, "failed to back up %s", op.Source)
		}
		result.Executed++
	}

	var synthOps []synthfs.Operation
	for _, op := range ops {
		if !op.Mutating() || op.Type == types.OperationBackupRename {
			continue
		}
		synthOp, err := e.convert(op)
		if err != nil {
			return result, err
		}
		synthOps = append(synthOps, synthOp)
	}

	if len(synthOps) == 0 {
		e.logger.Info().Msg("No operations to execute")
		return result, nil
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range synthOps {
		if err := pipeline.Add(op); err != nil {
			return result, errors.Wrap(err, errors.ErrDeployExecute, "failed to add operation to pipeline")
		}
	}

	ctx := context.Background()
	executor := synthfs.NewExecutor()

	e.logger.Info().Int("operationCount", len(synthOps)).Msg("Executing operations")

	runResult := executor.Run(ctx, pipeline, e.filesystem)
	if runResult.GetError() != nil {
		return result, errors.Wrap(runResult.GetError(), errors.ErrDeployExecute, "failed to execute operations")
	}

	result.Executed += len(synthOps)
	return result, nil
}

func (e *SynthfsExecutor) convert(op types.Operation) (synthfs.Operation, error) {
	switch op.Type {
	case types.OperationCreateDir:
		return e.convertCreateDir(op)
	case types.OperationCopyFile:
		return e.convertCopyFile(op)
	case types.OperationCreateSymlink:
		return e.convertCreateSymlink(op)
	case types.OperationWriteFile:
		return e.convertWriteFile(op)
	default:
		return nil, errors.Newf(errors.ErrDeployExecute, "unsupported operation type: %s", op.Type)
	}
}

func (e *SynthfsExecutor) convertCreateDir(op types.Operation) (synthfs.Operation, error) {
	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", op.Target)
	}

	opID := core.OperationID(fmt.Sprintf("create-dir-%s", op.Target))
	createOp := operations.NewCreateDirectoryOperation(opID, relPath)
	createOp.SetItem(&directoryItem{
		path: relPath,
		mode: 0755,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

func (e *SynthfsExecutor) convertWriteFile(op types.Operation) (synthfs.Operation, error) {
	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", op.Target)
	}

	mode := os.FileMode(0644)
	if op.Mode != nil {
		mode = os.FileMode(*op.Mode)
	}

	opID := core.OperationID(fmt.Sprintf("write-file-%s", op.Target))
	createOp := operations.NewCreateFileOperation(opID, relPath)
	createOp.SetItem(&fileItem{
		path:    relPath,
		content: []byte(op.Content),
		mode:    mode,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

func (e *SynthfsExecutor) convertCreateSymlink(op types.Operation) (synthfs.Operation, error) {
	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", op.Target)
	}
	relSource, err := filepath.Rel("/", op.Source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert source path: %s", op.Source)
	}

	opID := core.OperationID(fmt.Sprintf("symlink-%s", op.Target))
	symlinkOp := operations.NewCreateSymlinkOperation(opID, relPath)
	symlinkOp.SetDescriptionDetail("target", relSource)
	symlinkOp.SetItem(&symlinkItem{
		path:   relPath,
		target: relSource,
	})

	return synthfs.NewOperationsPackageAdapter(symlinkOp), nil
}

func (e *SynthfsExecutor) convertCopyFile(op types.Operation) (synthfs.Operation, error) {
	relSource, err := filepath.Rel("/", op.Source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert source path: %s", op.Source)
	}
	relTarget, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert target path: %s", op.Target)
	}

	opID := core.OperationID(fmt.Sprintf("copy-%s-to-%s", filepath.Base(op.Source), op.Target))
	copyOp := operations.NewCopyOperation(opID, relTarget)
	copyOp.SetPaths(relSource, relTarget)

	return synthfs.NewOperationsPackageAdapter(copyOp), nil
}

// Item types for synthfs operations

type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }

type symlinkItem struct {
	path   string
	target string
}

func (s *symlinkItem) Path() string   { return s.path }
func (s *symlinkItem) Type() string   { return "symlink" }
func (s *symlinkItem) Target() string { return s.target }
