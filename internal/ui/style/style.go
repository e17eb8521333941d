// Package style provides shared UI styling primitives for the end-of-run
// step summary.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cubuild/internal/core/domain"
)

// Colors.
var (
	Green  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22A06B"))
	Red    = lipgloss.NewStyle().Foreground(lipgloss.Color("#D93025"))
	Yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	Slate  = lipgloss.NewStyle().Foreground(lipgloss.Color("#667085"))
)

// Icons.
const (
	Check  = "✓"
	Cross  = "✗"
	Tilde  = "~"
	Circle = "○"
)

// StepLine renders one summary line for a finished step.
func StepLine(res domain.StepResult) string {
	switch res.Status {
	case domain.StatusSucceeded:
		return Green.Render(Check) + " " + res.Name.String()
	case domain.StatusFailed:
		return Red.Render(Cross) + " " + res.Name.String()
	case domain.StatusSkipped:
		return Slate.Render(Circle) + " " + res.Name.String() + Slate.Render(" (skipped)")
	default:
		return Yellow.Render(Tilde) + " " + res.Name.String()
	}
}

// Summary renders the whole step report.
func Summary(results []domain.StepResult) string {
	lines := make([]string, 0, len(results))
	for _, res := range results {
		lines = append(lines, StepLine(res))
	}
	return strings.Join(lines, "\n")
}
