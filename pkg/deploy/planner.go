// Package deploy turns packs into filesystem operations and executes
// them. Planning and execution are separate so --dry-run can render the
// plan without touching anything.
package deploy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/internal/hashutil"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/packs"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Planner computes the operations needed to bring the config home in
// line with the packs.
type Planner struct {
	fs         types.FS
	method     types.DeployMethod
	configHome string
	backupDir  string
	logger     zerolog.Logger
}

// NewPlanner creates a Planner. backupDir is the per-run backup
// directory name (already collision-resolved); it is only created if a
// conflict actually needs it.
func NewPlanner(fs types.FS, method types.DeployMethod, configHome, backupDir string) *Planner {
	return &Planner{
		fs:         fs,
		method:     method,
		configHome: configHome,
		backupDir:  backupDir,
		logger:     logging.GetLogger("deploy.planner"),
	}
}

// Plan produces the operations for all packs, in deploy order. The plan
// for an already-deployed tree contains no mutating operations.
func (p *Planner) Plan(packList []types.Pack) ([]types.Operation, error) {
	var ops []types.Operation
	needBackupDir := false

	for _, pack := range packList {
		packOps, packNeedsBackup, err := p.planPack(pack)
		if err != nil {
			return nil, err
		}
		needBackupDir = needBackupDir || packNeedsBackup
		ops = append(ops, packOps...)
	}

	if needBackupDir {
		// The backup dir creation leads the plan so renames always land
		// in an existing directory.
		ops = append([]types.Operation{{
			Type:        types.OperationCreateDir,
			Target:      p.backupDir,
			Description: fmt.Sprintf("create backup directory %s", filepath.Base(p.backupDir)),
			Status:      types.StatusReady,
		}}, ops...)
	}

	return ops, nil
}

func (p *Planner) planPack(pack types.Pack) ([]types.Operation, bool, error) {
	files, err := packs.Files(p.fs, pack)
	if err != nil {
		return nil, false, err
	}

	targetDir := pack.TargetDir(p.configHome)
	var ops []types.Operation
	needBackup := false
	madeDirs := map[string]bool{}

	for _, rel := range files {
		src := filepath.Join(pack.Path, rel)
		dst := filepath.Join(targetDir, rel)

		fileOps, backedUp, err := p.planFile(pack, src, dst, rel, madeDirs)
		if err != nil {
			return nil, false, err
		}
		needBackup = needBackup || backedUp
		ops = append(ops, fileOps...)
	}

	return ops, needBackup, nil
}

// planFile decides what one file needs: nothing, a fresh deploy, or a
// backup rename followed by a deploy.
func (p *Planner) planFile(pack types.Pack, src, dst, rel string, madeDirs map[string]bool) ([]types.Operation, bool, error) {
	var ops []types.Operation

	satisfied, conflict, err := p.inspectTarget(src, dst)
	if err != nil {
		return nil, false, err
	}

	if satisfied {
		p.logger.Debug().Str("pack", pack.Name).Str("target", dst).Msg("Target already deployed")
		ops = append(ops, types.Operation{
			Type:        p.deployOpType(),
			Source:      src,
			Target:      dst,
			Pack:        pack.Name,
			Description: fmt.Sprintf("%s: %s already deployed", pack.Name, rel),
			Status:      types.StatusSkipped,
		})
		return ops, false, nil
	}

	backedUp := false
	if conflict {
		backupTarget := filepath.Join(p.backupDir, pack.Name, rel)
		ops = append(ops, p.mkdirOps(filepath.Dir(backupTarget), pack.Name, madeDirs)...)
		ops = append(ops, types.Operation{
			Type:        types.OperationBackupRename,
			Source:      dst,
			Target:      backupTarget,
			Pack:        pack.Name,
			Description: fmt.Sprintf("%s: back up existing %s", pack.Name, rel),
			Status:      types.StatusReady,
		})
		backedUp = true
	}

	ops = append(ops, p.mkdirOps(filepath.Dir(dst), pack.Name, madeDirs)...)
	ops = append(ops, types.Operation{
		Type:        p.deployOpType(),
		Source:      src,
		Target:      dst,
		Pack:        pack.Name,
		Description: fmt.Sprintf("%s: deploy %s", pack.Name, rel),
		Status:      types.StatusReady,
	})

	return ops, backedUp, nil
}

// inspectTarget classifies the current state of dst: already satisfied,
// conflicting, or absent.
func (p *Planner) inspectTarget(src, dst string) (satisfied, conflict bool, err error) {
	info, lerr := p.fs.Lstat(dst)
	if lerr != nil {
		if os.IsNotExist(lerr) {
			return false, false, nil
		}
		return false, false, errors.Wrapf(lerr, errors.ErrFileAccess, "failed to inspect %s", dst)
	}

	switch p.method {
	case types.DeploySymlink:
		if info.Mode()&os.ModeSymlink != 0 {
			if target, rerr := p.fs.Readlink(dst); rerr == nil && target == src {
				return true, false, nil
			}
		}
	case types.DeployCopy:
		if info.Mode().IsRegular() && hashutil.FilesEqual(p.fs, src, dst) {
			return true, false, nil
		}
	}

	return false, true, nil
}

func (p *Planner) deployOpType() types.OperationType {
	if p.method == types.DeploySymlink {
		return types.OperationCreateSymlink
	}
	return types.OperationCopyFile
}

// mkdirOps emits a create-dir for dir once per plan.
func (p *Planner) mkdirOps(dir, pack string, madeDirs map[string]bool) []types.Operation {
	if madeDirs[dir] || dir == "." || dir == "/" {
		return nil
	}
	madeDirs[dir] = true

	// Existing directories need no operation.
	if info, err := p.fs.Stat(dir); err == nil && info.IsDir() {
		return nil
	}

	return []types.Operation{{
		Type:        types.OperationCreateDir,
		Target:      dir,
		Pack:        pack,
		Description: fmt.Sprintf("create directory %s", dir),
		Status:      types.StatusReady,
	}}
}

// MutatingCount counts the operations that would change the filesystem.
func MutatingCount(ops []types.Operation) int {
	count := 0
	for _, op := range ops {
		if op.Mutating() {
			count++
		}
	}
	return count
}
