package shellrc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsetup/pkg/deploy"
	"github.com/arthur-debert/dotsetup/pkg/filesystem"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

var fragments = []string{"00-env.zsh", "10-aliases.zsh", "20-keybindings.zsh", "30-fzf.zsh"}

func newTestGenerator(fs types.FS, dryRun bool) *Generator {
	return NewGenerator(fs, deploy.NewDirectExecutor(fs, dryRun))
}

// recordingExecutor captures the operations a generator emits.
type recordingExecutor struct {
	ops []types.Operation
}

func (r *recordingExecutor) Execute(ops []types.Operation) (deploy.Result, error) {
	r.ops = append(r.ops, ops...)
	return deploy.Result{Executed: deploy.MutatingCount(ops)}, nil
}

func TestGenerateZshrc(t *testing.T) {
	fs := filesystem.NewMemory()
	gen := newTestGenerator(fs, false)

	state, err := gen.GenerateZshrc("/home/user/.zshrc", "/home/user/.config/zsh", fragments)
	require.NoError(t, err)
	assert.Equal(t, StateWritten, state)

	data, err := fs.ReadFile("/home/user/.zshrc")
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, Marker))
	assert.Contains(t, content, `export DOTSETUP_ZSH_DIR="/home/user/.config/zsh"`)

	// fragments are sourced in load order, each behind an existence guard
	var lastIndex int
	for _, fragment := range fragments {
		line := `[ -f "$DOTSETUP_ZSH_DIR/` + fragment + `" ] && source "$DOTSETUP_ZSH_DIR/` + fragment + `"`
		index := strings.Index(content, line)
		require.GreaterOrEqual(t, index, 0, "missing source line for %s", fragment)
		assert.Greater(t, index, lastIndex, "%s sourced out of order", fragment)
		lastIndex = index
	}
}

func TestGenerateEmitsWriteFileOperations(t *testing.T) {
	fs := filesystem.NewMemory()
	recorder := &recordingExecutor{}
	gen := NewGenerator(fs, recorder)

	state, err := gen.GenerateZshrc("/home/user/.zshrc", "/frag", fragments)
	require.NoError(t, err)
	assert.Equal(t, StateWritten, state)

	require.Len(t, recorder.ops, 2)
	assert.Equal(t, types.OperationCreateDir, recorder.ops[0].Type)
	assert.Equal(t, "/home/user", recorder.ops[0].Target)

	write := recorder.ops[1]
	assert.Equal(t, types.OperationWriteFile, write.Type)
	assert.Equal(t, "/home/user/.zshrc", write.Target)
	assert.True(t, strings.HasPrefix(write.Content, Marker))
	assert.Equal(t, types.StatusReady, write.Status)
}

func TestGenerateSkipsCreateDirForExistingParent(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/home/user", 0755))
	recorder := &recordingExecutor{}
	gen := NewGenerator(fs, recorder)

	_, err := gen.GenerateZshrc("/home/user/.zshrc", "/frag", fragments)
	require.NoError(t, err)

	require.Len(t, recorder.ops, 1)
	assert.Equal(t, types.OperationWriteFile, recorder.ops[0].Type)
}

func TestGenerateZshrcIsIdempotent(t *testing.T) {
	fs := filesystem.NewMemory()
	gen := newTestGenerator(fs, false)

	state, err := gen.GenerateZshrc("/home/user/.zshrc", "/frag", fragments)
	require.NoError(t, err)
	assert.Equal(t, StateWritten, state)

	state, err = gen.GenerateZshrc("/home/user/.zshrc", "/frag", fragments)
	require.NoError(t, err)
	assert.Equal(t, StateUnchanged, state)
}

func TestGenerateRegeneratesOwnedFile(t *testing.T) {
	fs := filesystem.NewMemory()
	gen := newTestGenerator(fs, false)

	_, err := gen.GenerateZshrc("/home/user/.zshrc", "/frag", []string{"00-env.zsh"})
	require.NoError(t, err)

	state, err := gen.GenerateZshrc("/home/user/.zshrc", "/frag", fragments)
	require.NoError(t, err)
	assert.Equal(t, StateWritten, state)

	data, err := fs.ReadFile("/home/user/.zshrc")
	require.NoError(t, err)
	assert.Contains(t, string(data), "30-fzf.zsh")
}

func TestUserOwnedRcIsNeverTouched(t *testing.T) {
	fs := filesystem.NewMemory()
	gen := newTestGenerator(fs, false)

	original := "# my own zshrc\nexport PS1='%'\n"
	require.NoError(t, fs.MkdirAll("/home/user", 0755))
	require.NoError(t, fs.WriteFile("/home/user/.zshrc", []byte(original), 0644))

	state, err := gen.GenerateZshrc("/home/user/.zshrc", "/frag", fragments)
	require.NoError(t, err)
	assert.Equal(t, StateUserOwned, state)

	data, err := fs.ReadFile("/home/user/.zshrc")
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestGenerateFishConfigCreatesParentDirs(t *testing.T) {
	fs := filesystem.NewMemory()
	gen := newTestGenerator(fs, false)

	state, err := gen.GenerateFishConfig("/home/user/.config/fish/config.fish")
	require.NoError(t, err)
	assert.Equal(t, StateWritten, state)

	data, err := fs.ReadFile("/home/user/.config/fish/config.fish")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Marker))
}

func TestDryRunWritesNothing(t *testing.T) {
	fs := filesystem.NewMemory()
	gen := newTestGenerator(fs, true)

	state, err := gen.GenerateZshrc("/home/user/.zshrc", "/frag", fragments)
	require.NoError(t, err)
	assert.Equal(t, StateWritten, state)

	_, err = fs.ReadFile("/home/user/.zshrc")
	assert.Error(t, err)
}

func TestIsGenerated(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/rc", 0755))

	write := func(path, content string) {
		require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
	}

	write("/rc/generated", Marker+"\ncontent\n")
	write("/rc/marker-late", "line1\nline2\nline3\n"+Marker+"\n")
	write("/rc/user", "# plain zshrc\n")
	write("/rc/marker-third-line", "#!/bin/zsh\n\n"+Marker+"\n")

	assert.True(t, IsGenerated(fs, "/rc/generated"))
	assert.True(t, IsGenerated(fs, "/rc/marker-third-line"))
	assert.False(t, IsGenerated(fs, "/rc/marker-late"), "marker outside the first %d lines", MarkerWindow)
	assert.False(t, IsGenerated(fs, "/rc/user"))
	assert.False(t, IsGenerated(fs, "/rc/absent"))
}

func TestSnippet(t *testing.T) {
	zsh := Snippet("zsh", "/home/user/.config/zsh")
	assert.Contains(t, zsh, "/home/user/.config/zsh")
	assert.Contains(t, zsh, "source")

	fish := Snippet("fish", "/ignored")
	assert.Contains(t, fish, "conf.d")
}
