// Package style owns terminal output formatting: pterm prefixes for
// status lines, lipgloss for headings, with color stripped when stdout
// is not a terminal.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

var (
	// TitleStyle renders section headings
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	// PackStyle renders pack names
	PackStyle = lipgloss.NewStyle().Bold(true)

	// MutedStyle renders secondary detail like paths
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) || termenv.ColorProfile() == termenv.Ascii {
		pterm.DisableColor()
	}
}

// Bold renders s in bold through pterm so it degrades with color off
func Bold(s string) string {
	return pterm.Bold.Sprint(s)
}

// Title renders a section heading
func Title(s string) string {
	return TitleStyle.Render(s)
}

// Muted renders secondary text
func Muted(s string) string {
	return MutedStyle.Render(s)
}
