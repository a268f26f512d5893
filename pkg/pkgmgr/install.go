package pkgmgr

import (
	"context"

	"github.com/arthur-debert/dotsetup/pkg/config"
	"github.com/arthur-debert/dotsetup/pkg/logging"
)

// PackageResult records the outcome of one package installation.
type PackageResult struct {
	// Canonical is the name as configured
	Canonical string

	// Resolved is the manager-specific package name actually installed
	Resolved string

	// Required marks packages from the required set
	Required bool

	// Err is nil on success
	Err error

	// Output holds the manager's combined output on failure
	Output string
}

// Report summarizes a batch install.
type Report struct {
	Manager   string
	Installed []PackageResult
	Failed    []PackageResult
}

// FailedRequired returns the failed packages from the required set.
func (r Report) FailedRequired() []PackageResult {
	var out []PackageResult
	for _, res := range r.Failed {
		if res.Required {
			out = append(out, res)
		}
	}
	return out
}

// InstallAll installs the configured package set one package at a time.
// Each failure is logged and recorded; nothing here aborts the run.
func InstallAll(ctx context.Context, runner Runner, mgr *Manager, cfg *config.Config) Report {
	logger := logging.GetLogger("pkgmgr")
	report := Report{Manager: mgr.Name}

	required := make(map[string]bool, len(cfg.Packages.Required))
	for _, name := range cfg.Packages.Required {
		required[name] = true
	}

	for _, canonical := range cfg.AllPackages() {
		resolved := cfg.PackageName(mgr.Name, canonical)
		result := PackageResult{
			Canonical: canonical,
			Resolved:  resolved,
			Required:  required[canonical],
		}

		name, args := mgr.InstallCommand(resolved)
		logger.Debug().Str("package", resolved).Str("command", name).Strs("args", args).Msg("Installing package")

		output, err := runner.Run(ctx, name, args...)
		if err != nil {
			result.Err = err
			result.Output = string(output)
			report.Failed = append(report.Failed, result)
			logger.Warn().
				Err(err).
				Str("package", resolved).
				Str("manager", mgr.Name).
				Msg("Package install failed, continuing")
			continue
		}

		report.Installed = append(report.Installed, result)
		logger.Info().Str("package", resolved).Msg("Package installed")
	}

	return report
}
