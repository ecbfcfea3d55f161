// Package report renders lint results as terminal text or JSON, with
// lipgloss styling and isatty-based color gating for the text form.
package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/texide/texide/pkg/plugin"
)

// styles holds the lipgloss renderers used by textReporter.
type styles struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	FilePath lipgloss.Style
	RuleID   lipgloss.Style
	Dim      lipgloss.Style
	Success  lipgloss.Style
}

func newStyles(colorEnabled bool) *styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &styles{Error: plain, Warning: plain, Info: plain, FilePath: plain, RuleID: plain, Dim: plain, Success: plain}
	}
	return &styles{
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		FilePath: lipgloss.NewStyle().Bold(true),
		RuleID:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
}

func (s *styles) forSeverity(sev plugin.Severity) lipgloss.Style {
	switch sev {
	case plugin.SeverityError:
		return s.Error
	case plugin.SeverityInfo:
		return s.Info
	default:
		return s.Warning
	}
}

// isColorEnabled determines if color should be used: "always"/"never"
// override, "auto" checks NO_COLOR and whether writer is a TTY.
func isColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
