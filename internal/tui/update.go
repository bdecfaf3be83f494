package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/gugan-zemuria/habitctl/internal/constants"
	"github.com/gugan-zemuria/habitctl/internal/models"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

var errEmptyName = errors.New("name is required")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case constants.StateAddHabit:
			return m.updateAddHabit(msg)
		case constants.StateDayDetail:
			return m.updateDayDetail(msg)
		default:
			return m.updateCalendar(msg)
		}
	}

	if m.state == constants.StateAddHabit && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.moveDay(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveDay(1)
	case key.Matches(msg, m.keys.Up):
		m.moveDay(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveDay(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.shiftMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.shiftMonth(1)
	case key.Matches(msg, m.keys.Today):
		now := time.Now()
		m.month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
		m.cursor = utils.TodayKey()
	case key.Matches(msg, m.keys.Enter):
		m.dayCursor = 0
		m.formError = ""
		m.state = constants.StateDayDetail
	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = constants.StateAddHabit
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateDayDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.formError = ""
		m.state = constants.StateCalendar
	case key.Matches(msg, m.keys.Up):
		if m.dayCursor > 0 {
			m.dayCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.dayCursor < len(m.habits)-1 {
			m.dayCursor++
		}
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Enter):
		if len(m.habits) == 0 {
			return m, nil
		}
		if utils.IsAfter(m.cursor, utils.TodayKey()) {
			m.formError = "Cannot record completions for future dates"
			return m, nil
		}
		habit := m.habits[m.dayCursor]
		if _, err := m.store.ToggleCompletion(habit.ID, m.cursor); err != nil {
			m.formError = err.Error()
			return m, nil
		}
		m.formError = ""
		m.refresh()
	}
	return m, nil
}

func (m Model) updateAddHabit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.state = constants.StateCalendar
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		emoji := m.habitForm.Emoji
		if emoji == "" {
			emoji = constants.DefaultEmoji
		}
		habit := models.Habit{
			ID:          uuid.New().String(),
			Name:        m.habitForm.Name,
			Emoji:       emoji,
			Description: m.habitForm.Description,
			Category:    m.habitForm.Category,
			CreatedAt:   time.Now().UTC(),
		}
		if err := m.store.AddHabit(habit); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.formError = ""
		m.refresh()
		m.state = constants.StateCalendar
	case huh.StateAborted:
		m.state = constants.StateCalendar
	}
	return m, cmd
}

// moveDay shifts the cursor by delta days, following it across month
// boundaries.
func (m *Model) moveDay(delta int) {
	t, err := utils.ParseDateKey(m.cursor)
	if err != nil {
		m.cursor = utils.TodayKey()
		return
	}
	t = t.AddDate(0, 0, delta)
	m.cursor = utils.DateKey(t)
	m.month = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

// shiftMonth moves the displayed month, clamping the cursor into it.
func (m *Model) shiftMonth(delta int) {
	m.month = m.month.AddDate(0, delta, 0)
	t, err := utils.ParseDateKey(m.cursor)
	if err != nil {
		m.cursor = utils.DateKey(m.month)
		return
	}
	day := t.Day()
	lastDay := m.month.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	m.cursor = utils.DateKey(time.Date(m.month.Year(), m.month.Month(), day, 0, 0, 0, 0, time.Local))
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.Name).
				Validate(func(s string) error {
					if s == "" {
						return errEmptyName
					}
					return nil
				}),
			huh.NewInput().
				Title("Emoji").
				Value(&f.Emoji),
			huh.NewInput().
				Title("Description").
				Value(&f.Description),
			huh.NewInput().
				Title("Category").
				Value(&f.Category),
		),
	)
}
