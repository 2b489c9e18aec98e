package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/oahu-surf/internal/models"
)

var (
	// Color palette
	colorPrimary   = lipgloss.Color("#00BFFF") // Deep sky blue
	colorSecondary = lipgloss.Color("#87CEEB") // Sky blue
	colorDanger    = lipgloss.Color("#FF6B6B") // Red for rough surf and errors
	colorWarning   = lipgloss.Color("#FFD93D") // Yellow for fair surf
	colorSuccess   = lipgloss.Color("#6BCF7F") // Green for flat water
	colorMuted     = lipgloss.Color("#6C757D") // Gray
	colorBorder    = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	activeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorPrimary).
				Padding(0, 1)

	inactiveTitleStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	// Card pane
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	shoreNameStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	// Tide markers
	highTideStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	lowTideStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginTop(1)
)

// conditionStyle colours a face height by how big the surf is
func conditionStyle(c models.Condition) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch c {
	case models.ConditionFlat:
		return base.Foreground(colorSuccess)
	case models.ConditionFair:
		return base.Foreground(colorWarning)
	case models.ConditionRough:
		return base.Foreground(colorDanger)
	}
	return base.Foreground(lipgloss.Color("#FF8C42"))
}
