package cli

import (
	"time"

	"github.com/arthur-debert/dotsetup/pkg/deploy"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/packs"
	"github.com/arthur-debert/dotsetup/pkg/shellrc"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// DeployOutcome is what a deploy run produced, for rendering.
type DeployOutcome struct {
	Ops       []types.Operation
	Result    deploy.Result
	BackupDir string
}

// DeployPacks plans and executes deployment for all configured packs.
func (a *App) DeployPacks() (*DeployOutcome, error) {
	logger := logging.GetLogger("cli")
	done := logging.LogOperationStart(logger, "deploy")
	defer done()

	packList, err := a.Packs()
	if err != nil {
		return nil, err
	}

	backupDir, err := a.Paths.NextBackupDir(a.FS, time.Now().Unix())
	if err != nil {
		return nil, err
	}

	planner := deploy.NewPlanner(a.FS, a.Config.Method(), a.Paths.ConfigHome(), backupDir)
	ops, err := planner.Plan(packList)
	if err != nil {
		return nil, err
	}

	result, err := a.Executor().Execute(ops)
	if err != nil {
		return nil, err
	}

	return &DeployOutcome{Ops: ops, Result: result, BackupDir: backupDir}, nil
}

// RcOutcome reports one generated rc file.
type RcOutcome struct {
	Path  string
	State shellrc.GenState
}

// GenerateRcFiles writes the zsh and fish startup files, respecting the
// ownership marker.
func (a *App) GenerateRcFiles() ([]RcOutcome, error) {
	var outcomes []RcOutcome
	gen := shellrc.NewGenerator(a.FS, a.Executor())

	zshrcPath, err := a.ZshrcPath()
	if err != nil {
		return nil, err
	}

	packList, err := a.Packs()
	if err != nil {
		return nil, err
	}

	var fragments []string
	for _, pack := range packList {
		if pack.Name == "zsh" {
			fragments, err = packs.Fragments(a.FS, pack, ".zsh")
			if err != nil {
				return nil, err
			}
		}
	}

	state, err := gen.GenerateZshrc(zshrcPath, a.ZshFragmentsDir(), fragments)
	if err != nil {
		return nil, err
	}
	outcomes = append(outcomes, RcOutcome{Path: zshrcPath, State: state})

	fishState, err := gen.GenerateFishConfig(a.FishConfigPath())
	if err != nil {
		return nil, err
	}
	outcomes = append(outcomes, RcOutcome{Path: a.FishConfigPath(), State: fishState})

	return outcomes, nil
}
