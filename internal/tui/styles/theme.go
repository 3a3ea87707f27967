package styles

import (
	"github.com/allbin/zwave-ports/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	// Table styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Text)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(colors.Text).
			Background(colors.Surface1)

	// Detail panel
	DetailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colors.Surface2).
				Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colors.Text)

	// Status styles
	AccessibleStyle = lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true)

	DeniedStyle = lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true)

	FilterStyle = lipgloss.NewStyle().
			Foreground(colors.Yellow)

	StatusStyle = lipgloss.NewStyle().
			Foreground(colors.Overlay1)

	// Info styles
	InfoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Align(lipgloss.Center)
)

// AccessStyle returns the style for a permission state
func AccessStyle(ok bool) lipgloss.Style {
	if ok {
		return AccessibleStyle
	}
	return DeniedStyle
}
