package hashutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsetup/pkg/filesystem"
)

func TestHashBytes(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashBytes(nil))
	assert.NotEqual(t, HashBytes([]byte("a")), HashBytes([]byte("b")))
}

func TestFilesEqual(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/d", 0755))
	require.NoError(t, fs.WriteFile("/d/a", []byte("same"), 0644))
	require.NoError(t, fs.WriteFile("/d/b", []byte("same"), 0644))
	require.NoError(t, fs.WriteFile("/d/c", []byte("different"), 0644))

	assert.True(t, FilesEqual(fs, "/d/a", "/d/b"))
	assert.False(t, FilesEqual(fs, "/d/a", "/d/c"))
	assert.False(t, FilesEqual(fs, "/d/a", "/d/missing"))
	assert.False(t, FilesEqual(fs, "/d/missing", "/d/a"))
}
