package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Padding(0, 1).
			Bold(true)

	weekdayHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Width(4).
				Align(lipgloss.Center)

	dayCellStyle = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center)

	completeDayStyle = dayCellStyle.
				Foreground(lipgloss.Color("42")).
				Bold(true)

	partialDayStyle = dayCellStyle.
			Foreground(lipgloss.Color("214"))

	missedDayStyle = dayCellStyle.
			Foreground(lipgloss.Color("240"))

	cursorDayStyle = dayCellStyle.
			Background(lipgloss.Color("236")).
			Bold(true)

	todayStyle = dayCellStyle.
			Foreground(lipgloss.Color("205")).
			Underline(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
