package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPurple = lipgloss.Color("#A855F7")
	colorGreen  = lipgloss.Color("#22C55E")
	colorDim    = lipgloss.Color("#6B7280")
	colorWhite  = lipgloss.Color("#F9FAFB")

	// Header above the tab bar.
	headerStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	// Category labels inside tab content.
	labelStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// Body text of the active tab.
	bodyStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	// Shortcuts hint shown below the content.
	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
