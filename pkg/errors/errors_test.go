package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrPackNotFound, "pack missing")
	assert.Equal(t, "[PACK_NOT_FOUND] pack missing", plain.Error())

	wrapped := Wrap(fmt.Errorf("no such file"), ErrFileAccess, "failed to read config")
	assert.Equal(t, "[FILE_ACCESS] failed to read config: no such file", wrapped.Error())
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileAccess, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrFileAccess, "ignored %s", "too"))
}

func TestIsComparesByCode(t *testing.T) {
	err := Wrapf(fmt.Errorf("underlying"), ErrPluginClone, "clone of %s failed", "fzf-tab")

	assert.True(t, stderrors.Is(err, New(ErrPluginClone, "")))
	assert.False(t, stderrors.Is(err, New(ErrPackNotFound, "")))
}

func TestUnwrapPreservesChain(t *testing.T) {
	base := fmt.Errorf("base")
	err := Wrap(base, ErrDeployExecute, "execute failed")

	require.ErrorIs(t, err, base)
}

func TestSeverityClassification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		fatal bool
	}{
		{"running as root is always fatal", New(ErrRunningAsRoot, "root"), true},
		{"missing shell is always fatal", New(ErrShellMissing, "no fish"), true},
		{"no package manager is always fatal", New(ErrNoPackageManager, "none"), true},
		{"invalid config is always fatal", New(ErrConfigValid, "bad method"), true},
		{"package install failure is best-effort", New(ErrPackageInstall, "apt failed"), false},
		{"plugin clone failure is best-effort", New(ErrPluginClone, "clone failed"), false},
		{"best-effort code escalated with AsFatal", New(ErrPluginClone, "clone failed").AsFatal(), true},
		{"foreign errors are fatal", fmt.Errorf("unclassified"), true},
		{"wrapped fatal stays fatal through foreign wrapping", fmt.Errorf("ctx: %w", New(ErrRunningAsRoot, "root")), true},
		{"nil is not fatal", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fatal, IsFatal(tt.err))
		})
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrBackupCreate, CodeOf(New(ErrBackupCreate, "x")))
	assert.Equal(t, ErrBackupCreate, CodeOf(fmt.Errorf("ctx: %w", New(ErrBackupCreate, "x"))))
	assert.Equal(t, ErrUnknown, CodeOf(fmt.Errorf("foreign")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrPackInvalid, "bad pack").WithDetail("pack", "fish")
	assert.Equal(t, "fish", err.Details["pack"])
}
