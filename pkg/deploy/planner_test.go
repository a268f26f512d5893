package deploy_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsetup/pkg/deploy"
	"github.com/arthur-debert/dotsetup/pkg/filesystem"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

const (
	configHome = "/home/user/.config"
	backupDir  = "/home/user/.config/config_backup_1700000000"
)

func newPack(t *testing.T, fs types.FS, name string, files map[string]string) types.Pack {
	t.Helper()
	pack := types.Pack{Name: name, Path: filepath.Join("/repo/dotfiles", name)}
	for rel, content := range files {
		full := filepath.Join(pack.Path, rel)
		require.NoError(t, fs.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, fs.WriteFile(full, []byte(content), 0644))
	}
	return pack
}

func opsOfType(ops []types.Operation, opType types.OperationType) []types.Operation {
	var out []types.Operation
	for _, op := range ops {
		if op.Type == opType {
			out = append(out, op)
		}
	}
	return out
}

func TestPlanFreshDeploy(t *testing.T) {
	fs := filesystem.NewMemory()
	pack := newPack(t, fs, "kitty", map[string]string{"kitty.conf": "font_size 12.0"})

	planner := deploy.NewPlanner(fs, types.DeployCopy, configHome, backupDir)
	ops, err := planner.Plan([]types.Pack{pack})
	require.NoError(t, err)

	copies := opsOfType(ops, types.OperationCopyFile)
	require.Len(t, copies, 1)
	assert.Equal(t, filepath.Join(configHome, "kitty", "kitty.conf"), copies[0].Target)
	assert.Equal(t, types.StatusReady, copies[0].Status)

	// nothing pre-existing, so no backup dir and no renames
	assert.Empty(t, opsOfType(ops, types.OperationBackupRename))
	for _, op := range opsOfType(ops, types.OperationCreateDir) {
		assert.NotEqual(t, backupDir, op.Target)
	}
}

func TestPlanTargetDirDot(t *testing.T) {
	fs := filesystem.NewMemory()
	pack := newPack(t, fs, "starship", map[string]string{"starship.toml": "add_newline = true"})
	pack.Target = "."

	planner := deploy.NewPlanner(fs, types.DeployCopy, configHome, backupDir)
	ops, err := planner.Plan([]types.Pack{pack})
	require.NoError(t, err)

	copies := opsOfType(ops, types.OperationCopyFile)
	require.Len(t, copies, 1)
	assert.Equal(t, filepath.Join(configHome, "starship.toml"), copies[0].Target)
}

func TestDeployIsIdempotent(t *testing.T) {
	fs := filesystem.NewMemory()
	pack := newPack(t, fs, "fish", map[string]string{
		"conf.d/00-env.fish":     "set -gx EDITOR nvim",
		"conf.d/10-aliases.fish": "alias vi nvim",
	})

	planner := deploy.NewPlanner(fs, types.DeployCopy, configHome, backupDir)
	ops, err := planner.Plan([]types.Pack{pack})
	require.NoError(t, err)
	assert.Greater(t, deploy.MutatingCount(ops), 0)

	executor := deploy.NewDirectExecutor(fs, false)
	result, err := executor.Execute(ops)
	require.NoError(t, err)
	assert.Equal(t, deploy.MutatingCount(ops), result.Executed)

	deployed, err := fs.ReadFile(filepath.Join(configHome, "fish", "conf.d", "00-env.fish"))
	require.NoError(t, err)
	assert.Equal(t, "set -gx EDITOR nvim", string(deployed))

	// a second plan over the deployed tree must be a no-op
	replan, err := planner.Plan([]types.Pack{pack})
	require.NoError(t, err)
	assert.Equal(t, 0, deploy.MutatingCount(replan))
	for _, op := range opsOfType(replan, types.OperationCopyFile) {
		assert.Equal(t, types.StatusSkipped, op.Status)
	}
	assert.Empty(t, opsOfType(replan, types.OperationBackupRename))
}

func TestSymlinkDeployIsIdempotent(t *testing.T) {
	fs := filesystem.NewMemory()
	pack := newPack(t, fs, "kitty", map[string]string{"kitty.conf": "font_size 12.0"})

	planner := deploy.NewPlanner(fs, types.DeploySymlink, configHome, backupDir)
	ops, err := planner.Plan([]types.Pack{pack})
	require.NoError(t, err)

	_, err = deploy.NewDirectExecutor(fs, false).Execute(ops)
	require.NoError(t, err)

	target, err := fs.Readlink(filepath.Join(configHome, "kitty", "kitty.conf"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pack.Path, "kitty.conf"), target)

	replan, err := planner.Plan([]types.Pack{pack})
	require.NoError(t, err)
	assert.Equal(t, 0, deploy.MutatingCount(replan))
}

func TestPlanBacksUpConflictingFile(t *testing.T) {
	fs := filesystem.NewMemory()
	pack := newPack(t, fs, "kitty", map[string]string{"kitty.conf": "font_size 12.0"})

	// pre-existing config with different content
	existing := filepath.Join(configHome, "kitty", "kitty.conf")
	require.NoError(t, fs.MkdirAll(filepath.Dir(existing), 0755))
	require.NoError(t, fs.WriteFile(existing, []byte("font_size 10.0"), 0644))

	planner := deploy.NewPlanner(fs, types.DeployCopy, configHome, backupDir)
	ops, err := planner.Plan([]types.Pack{pack})
	require.NoError(t, err)

	// backup dir creation leads the plan
	require.NotEmpty(t, ops)
	assert.Equal(t, types.OperationCreateDir, ops[0].Type)
	assert.Equal(t, backupDir, ops[0].Target)

	renames := opsOfType(ops, types.OperationBackupRename)
	require.Len(t, renames, 1)
	assert.Equal(t, existing, renames[0].Source)
	assert.Equal(t, filepath.Join(backupDir, "kitty", "kitty.conf"), renames[0].Target)

	result, err := deploy.NewDirectExecutor(fs, false).Execute(ops)
	require.NoError(t, err)
	assert.Greater(t, result.Executed, 0)

	backedUp, err := fs.ReadFile(filepath.Join(backupDir, "kitty", "kitty.conf"))
	require.NoError(t, err)
	assert.Equal(t, "font_size 10.0", string(backedUp))

	deployed, err := fs.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "font_size 12.0", string(deployed))
}

func TestDryRunTouchesNothing(t *testing.T) {
	fs := filesystem.NewMemory()
	pack := newPack(t, fs, "fastfetch", map[string]string{"config.jsonc": "{}"})

	planner := deploy.NewPlanner(fs, types.DeployCopy, configHome, backupDir)
	ops, err := planner.Plan([]types.Pack{pack})
	require.NoError(t, err)

	result, err := deploy.NewDirectExecutor(fs, true).Execute(ops)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Executed)
	assert.Equal(t, len(ops), result.Skipped)

	_, err = fs.Stat(filepath.Join(configHome, "fastfetch", "config.jsonc"))
	assert.Error(t, err)
}

func TestMutatingCountIgnoresSkipped(t *testing.T) {
	ops := []types.Operation{
		{Type: types.OperationCopyFile, Status: types.StatusReady},
		{Type: types.OperationCopyFile, Status: types.StatusSkipped},
		{Type: types.OperationCreateDir, Status: types.StatusReady},
	}
	assert.Equal(t, 2, deploy.MutatingCount(ops))
}
