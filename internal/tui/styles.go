package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/multyp/grocer/internal/config"
)

// Styles bundles the lipgloss styles derived from the configured theme
type Styles struct {
	Title    lipgloss.Style
	Success  lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style
	Panel    lipgloss.Style
	InputBar lipgloss.Style
}

const (
	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// NewStyles builds the style set from a theme
func NewStyles(theme config.Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)),
		Muted:    lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error)).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Selected)),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Muted)).
			Padding(0, 1),
		InputBar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Muted)).
			Padding(0, 1),
	}
}
