package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/gugan-zemuria/habitctl/internal/analytics"
	"github.com/gugan-zemuria/habitctl/internal/constants"
	"github.com/gugan-zemuria/habitctl/internal/models"
	"github.com/gugan-zemuria/habitctl/internal/storage"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

type HabitFormModel struct {
	Name        string
	Emoji       string
	Description string
	Category    string
}

type Model struct {
	store     storage.Provider
	state     constants.SessionState
	keys      KeyMap
	help      help.Model
	habits    []models.Habit
	calendar  analytics.CalendarMap
	month     time.Time // first day of the displayed month
	cursor    string    // selected day key (YYYY-MM-DD)
	dayCursor int       // selected habit index in day detail
	form      *huh.Form
	habitForm *HabitFormModel
	formError string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider) Model {
	now := time.Now()
	m := Model{
		store: store,
		state: constants.StateCalendar,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		month: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
	}
	m.cursor = utils.TodayKey()
	m.refresh()
	return m
}

// refresh reloads habits and the completion calendar from the store.
func (m *Model) refresh() {
	habits, err := m.store.GetAllHabits(false, false)
	if err != nil {
		habits = []models.Habit{}
	}

	byHabit := map[string][]string{}
	if completions, err := m.store.GetAllCompletions(); err == nil {
		for _, c := range completions {
			byHabit[c.HabitID] = append(byHabit[c.HabitID], c.Day)
		}
	}

	sets := make(map[string]analytics.DateSet, len(byHabit))
	for id, days := range byHabit {
		sets[id] = analytics.NewDateSet(days...)
	}

	m.habits = analytics.RefreshStreaks(habits, sets, utils.TodayKey())
	m.calendar = analytics.BuildCalendarMap(byHabit)

	if m.dayCursor >= len(m.habits) {
		m.dayCursor = 0
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
