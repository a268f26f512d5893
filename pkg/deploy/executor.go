package deploy

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Executor runs a plan.
type Executor interface {
	Execute(ops []types.Operation) (Result, error)
}

// Result summarizes an execution.
type Result struct {
	Executed int
	Skipped  int
}

// DirectExecutor executes operations immediately against a types.FS.
// It is the default executor; the synthfs pipeline executor is the
// alternative for staged execution against the real filesystem.
type DirectExecutor struct {
	fs     types.FS
	dryRun bool
	logger zerolog.Logger
}

// NewDirectExecutor creates a DirectExecutor.
func NewDirectExecutor(fs types.FS, dryRun bool) *DirectExecutor {
	return &DirectExecutor{
		fs:     fs,
		dryRun: dryRun,
		logger: logging.GetLogger("deploy.executor"),
	}
}

// Execute runs the operations in order. In dry-run mode it logs what
// would happen and reports every ready operation as skipped.
func (e *DirectExecutor) Execute(ops []types.Operation) (Result, error) {
	var result Result

	for _, op := range ops {
		if !op.Mutating() {
			result.Skipped++
			continue
		}

		if e.dryRun {
			e.logger.Info().
				Str("type", string(op.Type)).
				Str("target", op.Target).
				Msg("Dry run: " + op.Description)
			result.Skipped++
			continue
		}

		if err := e.execute(op); err != nil {
			return result, err
		}
		result.Executed++
	}

	return result, nil
}

func (e *DirectExecutor) execute(op types.Operation) error {
	e.logger.Debug().
		Str("type", string(op.Type)).
		Str("source", op.Source).
		Str("target", op.Target).
		Msg(op.Description)

	switch op.Type {
	case types.OperationCreateDir:
		if err := e.fs.MkdirAll(op.Target, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", op.Target)
		}

	case types.OperationBackupRename:
		if err := e.fs.MkdirAll(filepath.Dir(op.Target), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrBackupCreate, "failed to create backup dir for %s", op.Target)
		}
		if err := e.fs.Rename(op.Source, op.Target); err != nil {
			return errors.Wrapf(err, errors.ErrBackupCreate, "failed to back up %s", op.Source)
		}

	case types.OperationCopyFile:
		data, err := e.fs.ReadFile(op.Source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", op.Source)
		}
		mode := os.FileMode(0644)
		if info, serr := e.fs.Stat(op.Source); serr == nil {
			mode = info.Mode().Perm()
		}
		if err := e.fs.WriteFile(op.Target, data, mode); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", op.Target)
		}

	case types.OperationCreateSymlink:
		if err := e.fs.Symlink(op.Source, op.Target); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s", op.Target)
		}

	case types.OperationWriteFile:
		mode := os.FileMode(0644)
		if op.Mode != nil {
			mode = os.FileMode(*op.Mode)
		}
		if err := e.fs.WriteFile(op.Target, []byte(op.Content), mode); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", op.Target)
		}

	default:
		return errors.Newf(errors.ErrDeployExecute, "unsupported operation type: %s", op.Type)
	}

	return nil
}
