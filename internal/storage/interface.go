package storage

import "github.com/gugan-zemuria/habitctl/internal/models"

// Provider is the persistence contract shared by the SQLite and
// PostgreSQL backends. Day parameters are local calendar keys in
// YYYY-MM-DD form.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Completions
	AddCompletion(models.Completion) error
	GetCompletions(habitID string) ([]models.Completion, error)
	GetAllCompletions() ([]models.Completion, error)
	GetCompletionsForDay(day string) ([]models.Completion, error)
	// GetCalendarCompletions returns the date-keyed aggregation for the
	// inclusive day range: every habit ID completed on each day.
	GetCalendarCompletions(startDay, endDay string) (map[string][]string, error)
	// ToggleCompletion flips the completion state for (habitID, day) and
	// reports the resulting state.
	ToggleCompletion(habitID, day string) (bool, error)
	// ReplaceCompletionsForDay makes habitIDs the exact set of habits
	// completed on day, inserting and removing as needed.
	ReplaceCompletionsForDay(day string, habitIDs []string) error
	DeleteCompletion(id string) error

	// Utils
	GetConfigPath() string
}
