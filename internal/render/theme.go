package render

import "github.com/charmbracelet/lipgloss"

// Theme holds all card styles and colors. Keeping them centralised makes
// it straightforward to add dark/light mode support later.
var (
	// Colors.
	colorPurple = lipgloss.Color("#A855F7")
	colorGreen  = lipgloss.Color("#22C55E")
	colorDim    = lipgloss.Color("#6B7280")
	colorCyan   = lipgloss.Color("#06B6D4")
	colorWhite  = lipgloss.Color("#F9FAFB")

	// Card frame.
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple).
			Padding(1, 2)

	// Header: name and role.
	nameStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	roleStyle = lipgloss.NewStyle().
			Foreground(colorPurple)

	// Field lines (location, motto, education, certification).
	fieldStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	// Section headers within the card.
	sectionStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	// Skill category labels.
	categoryStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// Skill/interest items and contact handles.
	itemStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	handleStyle = lipgloss.NewStyle().
			Foreground(colorCyan)
)
