package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("63")
	colorError  = lipgloss.Color("160")
	colorDim    = lipgloss.Color("241")

	styleTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleSummary = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	styleError = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	styleDimmed = lipgloss.NewStyle().
			Foreground(colorDim)

	styleChartBar = lipgloss.NewStyle().
			Foreground(colorAccent)
)
