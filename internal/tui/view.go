package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gugan-zemuria/habitctl/internal/analytics"
	"github.com/gugan-zemuria/habitctl/internal/constants"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateDayDetail:
		content = m.viewDayDetail()
	case constants.StateAddHabit:
		content = m.viewAddHabit()
	default:
		content = m.viewCalendar()
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		"",
		m.help.View(m.keys),
	))
}

func (m Model) viewCalendar() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.month.Format("January 2006")))
	b.WriteString("\n\n")

	var header []string
	for _, wd := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		header = append(header, weekdayHeaderStyle.Render(wd))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	today := utils.TodayKey()
	first := m.month
	offset := (int(first.Weekday()) + 6) % 7 // Monday-start grid
	lastDay := first.AddDate(0, 1, -1).Day()

	var cells []string
	for i := 0; i < offset; i++ {
		cells = append(cells, dayCellStyle.Render(""))
	}
	for day := 1; day <= lastDay; day++ {
		key := utils.DateKey(first.AddDate(0, 0, day-1))
		cells = append(cells, m.renderDayCell(key, day, today))
		if len(cells) == 7 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			b.WriteString("\n")
			cells = nil
		}
	}
	if len(cells) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewDaySummary(today))

	return b.String()
}

func (m Model) renderDayCell(key string, day int, today string) string {
	label := fmt.Sprintf("%d", day)

	if key == m.cursor {
		return cursorDayStyle.Render(label)
	}

	switch analytics.StatusForDay(m.calendar, key, today, len(m.habits)) {
	case constants.StatusComplete:
		return completeDayStyle.Render(label)
	case constants.StatusPartial:
		return partialDayStyle.Render(label)
	case constants.StatusMissed:
		return missedDayStyle.Render(label)
	}

	if key == today {
		return todayStyle.Render(label)
	}
	return dayCellStyle.Render(label)
}

func (m Model) viewDaySummary(today string) string {
	done := m.calendar.Count(m.cursor)
	status := analytics.StatusForDay(m.calendar, m.cursor, today, len(m.habits))
	return mutedStyle.Render(fmt.Sprintf("%s  %d of %d completed (%s)", m.cursor, done, len(m.habits), status))
}

func (m Model) viewDayDetail() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.cursor))
	b.WriteString("\n\n")

	if len(m.habits) == 0 {
		b.WriteString(mutedStyle.Render("No habits yet. Press 'a' to add one."))
		return b.String()
	}

	for i, h := range m.habits {
		mark := "○"
		if m.calendar.Completed(m.cursor, h.ID) {
			mark = "✓"
		}
		pointer := "  "
		if i == m.dayCursor {
			pointer = "> "
		}
		line := fmt.Sprintf("%s%s %s %s", pointer, mark, h.Emoji, h.Name)
		if h.CurrentStreak > 0 {
			line += mutedStyle.Render(fmt.Sprintf("  (streak %d)", h.CurrentStreak))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.formError != "" {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render(m.formError))
	}

	return b.String()
}

func (m Model) viewAddHabit() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New habit"))
	b.WriteString("\n\n")
	b.WriteString(m.form.View())
	if m.formError != "" {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render(m.formError))
	}
	return b.String()
}
