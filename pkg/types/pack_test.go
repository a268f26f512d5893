package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetDir(t *testing.T) {
	configHome := "/home/user/.config"

	assert.Equal(t, "/home/user/.config/fish",
		Pack{Name: "fish"}.TargetDir(configHome))

	assert.Equal(t, "/home/user/.config",
		Pack{Name: "starship", Target: "."}.TargetDir(configHome))

	assert.Equal(t, "/home/user/.config/custom",
		Pack{Name: "zsh", Target: "custom"}.TargetDir(configHome))
}

func TestDeployMethodValid(t *testing.T) {
	assert.True(t, DeployCopy.Valid())
	assert.True(t, DeploySymlink.Valid())
	assert.False(t, DeployMethod("hardlink").Valid())
	assert.False(t, DeployMethod("").Valid())
}

func TestOperationMutating(t *testing.T) {
	assert.True(t, Operation{Type: OperationCopyFile, Status: StatusReady}.Mutating())
	assert.False(t, Operation{Type: OperationCopyFile, Status: StatusSkipped}.Mutating())
	assert.False(t, Operation{Type: OperationCopyFile, Status: StatusConflict}.Mutating())
}
