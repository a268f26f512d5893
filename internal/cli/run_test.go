package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsetup/internal/cli"
	"github.com/arthur-debert/dotsetup/pkg/paths"
	"github.com/arthur-debert/dotsetup/pkg/shellrc"
	"github.com/arthur-debert/dotsetup/pkg/testutil"
)

// setup builds a repo with fish and zsh packs and scopes the installer
// config to just those.
func setup(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	env := testutil.NewTestEnvironment(t)

	env.WriteFile(filepath.Join(env.DotfilesRoot, paths.RootConfigFile),
		"[deploy]\nmethod = \"copy\"\npacks = [\"fish\", \"zsh\"]\n")

	env.CreatePack("fish", map[string]string{
		"conf.d/00-env.fish":     "set -gx EDITOR nvim\n",
		"conf.d/10-aliases.fish": "alias vi nvim\n",
	})
	env.CreatePack("zsh", map[string]string{
		"00-env.zsh":     "export EDITOR=nvim\n",
		"10-aliases.zsh": "alias vi=nvim\n",
		"30-fzf.zsh":     "command -v fzf >/dev/null || return\n",
	})
	return env
}

func TestDeployPacks(t *testing.T) {
	env := setup(t)

	app, err := cli.NewApp(cli.Options{})
	require.NoError(t, err)

	outcome, err := app.DeployPacks()
	require.NoError(t, err)
	assert.Greater(t, outcome.Result.Executed, 0)

	deployed, err := os.ReadFile(filepath.Join(env.ConfigHome, "fish", "conf.d", "00-env.fish"))
	require.NoError(t, err)
	assert.Equal(t, "set -gx EDITOR nvim\n", string(deployed))

	// nothing pre-existed, so no backup directory appeared
	entries, err := os.ReadDir(env.ConfigHome)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), paths.BackupDirPrefix))
	}
}

func TestDeployPacksIsIdempotent(t *testing.T) {
	setup(t)

	app, err := cli.NewApp(cli.Options{})
	require.NoError(t, err)

	first, err := app.DeployPacks()
	require.NoError(t, err)
	assert.Greater(t, first.Result.Executed, 0)

	second, err := app.DeployPacks()
	require.NoError(t, err)
	assert.Equal(t, 0, second.Result.Executed)
}

func TestDeployPacksBacksUpConflicts(t *testing.T) {
	env := setup(t)

	existing := filepath.Join(env.ConfigHome, "zsh", "00-env.zsh")
	env.WriteFile(existing, "export EDITOR=vim\n")

	app, err := cli.NewApp(cli.Options{})
	require.NoError(t, err)

	outcome, err := app.DeployPacks()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(outcome.BackupDir), paths.BackupDirPrefix))

	backedUp, err := os.ReadFile(filepath.Join(outcome.BackupDir, "zsh", "00-env.zsh"))
	require.NoError(t, err)
	assert.Equal(t, "export EDITOR=vim\n", string(backedUp))

	deployed, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "export EDITOR=nvim\n", string(deployed))
}

func TestDryRunDeployTouchesNothing(t *testing.T) {
	env := setup(t)

	app, err := cli.NewApp(cli.Options{DryRun: true})
	require.NoError(t, err)

	outcome, err := app.DeployPacks()
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Result.Executed)

	_, err = os.Stat(filepath.Join(env.ConfigHome, "fish"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateRcFiles(t *testing.T) {
	env := setup(t)

	app, err := cli.NewApp(cli.Options{})
	require.NoError(t, err)

	_, err = app.DeployPacks()
	require.NoError(t, err)

	outcomes, err := app.GenerateRcFiles()
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	for _, outcome := range outcomes {
		assert.Equal(t, shellrc.StateWritten, outcome.State)
	}

	zshrc, err := os.ReadFile(filepath.Join(env.HomeDir, ".zshrc"))
	require.NoError(t, err)
	content := string(zshrc)
	assert.True(t, strings.HasPrefix(content, shellrc.Marker))

	// fragments sourced in numeric-prefix order
	envIdx := strings.Index(content, "00-env.zsh")
	aliasIdx := strings.Index(content, "10-aliases.zsh")
	fzfIdx := strings.Index(content, "30-fzf.zsh")
	require.True(t, envIdx >= 0 && aliasIdx >= 0 && fzfIdx >= 0)
	assert.Less(t, envIdx, aliasIdx)
	assert.Less(t, aliasIdx, fzfIdx)

	fishConfig, err := os.ReadFile(filepath.Join(env.ConfigHome, "fish", "config.fish"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(fishConfig), shellrc.Marker))
}

func TestGenerateRcFilesRespectsUserOwnership(t *testing.T) {
	env := setup(t)

	original := "# hand-written zshrc\n"
	env.WriteFile(filepath.Join(env.HomeDir, ".zshrc"), original)

	app, err := cli.NewApp(cli.Options{})
	require.NoError(t, err)

	outcomes, err := app.GenerateRcFiles()
	require.NoError(t, err)
	assert.Equal(t, shellrc.StateUserOwned, outcomes[0].State)

	zshrc, err := os.ReadFile(filepath.Join(env.HomeDir, ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, original, string(zshrc))
}
