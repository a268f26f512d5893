package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	dserrors "github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/pkgmgr"
	"github.com/arthur-debert/dotsetup/pkg/plugins"
	"github.com/arthur-debert/dotsetup/pkg/status"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Renderer turns reports into terminal output.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderOperations renders a deploy plan, one line per operation.
func (r *Renderer) RenderOperations(ops []types.Operation) string {
	if len(ops) == 0 {
		return Muted("No operations to perform")
	}

	var result strings.Builder
	for _, op := range ops {
		switch op.Status {
		case types.StatusSkipped:
			result.WriteString(fmt.Sprintf("  %s %s\n", Muted("="), Muted(op.Description)))
		case types.StatusReady:
			result.WriteString(fmt.Sprintf("  %s %s\n", pterm.Info.Prefix.Text, op.Description))
		default:
			result.WriteString(fmt.Sprintf("  %s %s\n", pterm.Warning.Prefix.Text, op.Description))
		}
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderPackageReport renders a package install summary.
func (r *Renderer) RenderPackageReport(report pkgmgr.Report) string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s via %s: %d installed, %d failed\n",
		Title("Packages"), Bold(report.Manager), len(report.Installed), len(report.Failed)))

	for _, failed := range report.Failed {
		result.WriteString(fmt.Sprintf("  %s %s\n",
			pterm.Warning.Prefix.Text,
			pterm.Warning.MessageStyle.Sprintf("%s failed to install", failed.Resolved)))
	}
	if failedRequired := report.FailedRequired(); len(failedRequired) > 0 {
		names := make([]string, 0, len(failedRequired))
		for _, f := range failedRequired {
			names = append(names, f.Resolved)
		}
		result.WriteString(fmt.Sprintf("  %s required packages missing: %s\n",
			pterm.Error.Prefix.Text, strings.Join(names, ", ")))
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderPluginReport renders a plugin clone summary.
func (r *Renderer) RenderPluginReport(report plugins.Report) string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s: %d cloned, %d already present, %d failed\n",
		Title("Plugins"), len(report.Cloned), len(report.Skipped), len(report.Failed)))
	for _, failed := range report.Failed {
		result.WriteString(fmt.Sprintf("  %s %s: %v\n",
			pterm.Warning.Prefix.Text, failed.Plugin.Name, failed.Err))
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderPackReports renders per-pack deployment status.
func (r *Renderer) RenderPackReports(reports []status.PackReport) string {
	if len(reports) == 0 {
		return Muted("No packs configured")
	}

	var result strings.Builder
	for _, report := range reports {
		stateStyle := packStateStyle(report.State)
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			stateStyle.Sprintf("%-10s", report.State),
			PackStyle.Render(report.Pack.Name),
			Muted(fmt.Sprintf("(%d in place, %d pending, %d conflicts)",
				report.InPlace, report.Pending, report.Conflicts))))
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderRcReports renders rc file ownership.
func (r *Renderer) RenderRcReports(reports []status.RcReport) string {
	var result strings.Builder
	for _, report := range reports {
		result.WriteString(fmt.Sprintf("%-10s %s\n", report.State, Muted(report.Path)))
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderPluginStatus renders plugin clone status.
func (r *Renderer) RenderPluginStatus(reports []status.PluginReport) string {
	var result strings.Builder
	for _, report := range reports {
		state := "missing"
		if report.Cloned {
			state = "cloned"
		}
		result.WriteString(fmt.Sprintf("%-10s %s %s\n", state, PackStyle.Render(report.Plugin.Name), Muted(report.Path)))
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders an error with its code when it carries one.
func (r *Renderer) RenderError(err error) string {
	var setupErr *dserrors.SetupError
	if errors.As(err, &setupErr) {
		return fmt.Sprintf("%s %s %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(setupErr.Code)),
			setupErr.Message)
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

func packStateStyle(state status.PackState) *pterm.Style {
	switch state {
	case status.StateDeployed:
		return pterm.NewStyle(pterm.FgGreen)
	case status.StatePartial:
		return pterm.NewStyle(pterm.FgYellow)
	case status.StateConflicted:
		return pterm.NewStyle(pterm.FgRed)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
