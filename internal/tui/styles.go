package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ashureev/cooked/internal/domain"
)

var (
	colorRaw      = lipgloss.Color("#ff5f5f")
	colorSizzling = lipgloss.Color("#ffd166")
	colorCooked   = lipgloss.Color("#05ffa1")
	colorMuted    = lipgloss.Color("#6c7086")
	colorUser     = lipgloss.Color("#7aa2f7")
)

// Styles holds every lipgloss style the view uses, built once at startup.
type Styles struct {
	Banner     lipgloss.Style
	UserLabel  lipgloss.Style
	TutorLabel lipgloss.Style
	Meter      lipgloss.Style
	MeterEmpty lipgloss.Style
	Footer     lipgloss.Style
	InputFrame lipgloss.Style
	StatusNote lipgloss.Style
}

// NewStyles builds the default style set.
func NewStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
		UserLabel:  lipgloss.NewStyle().Foreground(colorUser).Bold(true),
		TutorLabel: lipgloss.NewStyle().Foreground(colorCooked).Bold(true),
		Meter:      lipgloss.NewStyle(),
		MeterEmpty: lipgloss.NewStyle().Foreground(colorMuted),
		Footer:     lipgloss.NewStyle().Foreground(colorMuted),
		InputFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
		StatusNote: lipgloss.NewStyle().Foreground(colorSizzling),
	}
}

// stateColor maps a progression state to its accent color.
func stateColor(state string) lipgloss.Color {
	switch state {
	case domain.StateCooked:
		return colorCooked
	case domain.StateSizzling:
		return colorSizzling
	default:
		return colorRaw
	}
}
