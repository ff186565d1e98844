package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calc/internal/config"
)

// Styles holds the lipgloss styles of the keypad.
type Styles struct {
	Display lipgloss.Style
	Button  lipgloss.Style
	Focused lipgloss.Style
	Flash   lipgloss.Style
	Shift   lipgloss.Style
	Help    lipgloss.Style
}

// buttonWidth is the width of each button's caption area.
const buttonWidth = 7

// NewStyles derives the keypad styles from a theme.
func NewStyles(theme config.Theme) Styles {
	primary := lipgloss.Color(theme.Primary)
	accent := lipgloss.Color(theme.Accent)
	display := lipgloss.Color(theme.Display)
	return Styles{
		Display: lipgloss.NewStyle().
			Background(primary).
			Foreground(display).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Right),
		Button: lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D3D3D3")),
		Focused: lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Bold(true),
		Flash: lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Border(lipgloss.ThickBorder()).
			BorderForeground(primary).
			Background(accent).
			Foreground(lipgloss.Color("#000407")),
		Shift: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")),
	}
}
