package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"

	colorAccent = colorPink
	colorFocus  = colorLavender
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	searchStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	sortTriggerStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	selectedCardStyle = cardStyle.BorderForeground(colorFocus)

	fruitNameStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	favoritedStyle = lipgloss.NewStyle().Foreground(colorYellow)
	outlineStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)

	nutritionStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Background(colorSurface0).
			Padding(0, 1)

	menuItemStyle     = lipgloss.NewStyle().Foreground(colorText)
	menuSelectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	emptyStyle = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true).Padding(1, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)
)
