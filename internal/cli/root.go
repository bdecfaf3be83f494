package cli

import (
	"fmt"

	"github.com/gugan-zemuria/habitctl/internal/analytics"
	"github.com/gugan-zemuria/habitctl/internal/backup"
	"github.com/gugan-zemuria/habitctl/internal/logger"
	"github.com/gugan-zemuria/habitctl/internal/models"
	"github.com/gugan-zemuria/habitctl/internal/storage"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveHabit looks a habit up by name first, then by ID.
func (c *Context) ResolveHabit(nameOrID string) (models.Habit, error) {
	habit, err := c.Store.GetHabitByName(nameOrID)
	if err == nil {
		return habit, nil
	}
	habit, err = c.Store.GetHabit(nameOrID)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %q not found", nameOrID)
	}
	return habit, nil
}

// ResolveDay normalizes a date flag, defaulting to today when empty.
func ResolveDay(date string) (string, error) {
	if date == "" {
		return utils.TodayKey(), nil
	}
	day, err := utils.NormalizeDateKey(date)
	if err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return day, nil
}

// LoadCompletionSets loads every completion record and groups the parsed
// date sets by habit ID.
func LoadCompletionSets(store storage.Provider) (map[string]analytics.DateSet, error) {
	completions, err := store.GetAllCompletions()
	if err != nil {
		return nil, err
	}

	byHabit := make(map[string][]models.Completion)
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c)
	}

	sets := make(map[string]analytics.DateSet, len(byHabit))
	for id, cs := range byHabit {
		sets[id] = analytics.DateSetFromCompletions(cs)
	}
	return sets, nil
}

// LoadCompletionDays is LoadCompletionSets flattened back to sorted day
// keys per habit, the shape the CSV exporters take.
func LoadCompletionDays(store storage.Provider) (map[string][]string, error) {
	sets, err := LoadCompletionSets(store)
	if err != nil {
		return nil, err
	}
	days := make(map[string][]string, len(sets))
	for id, set := range sets {
		days[id] = set.Days()
	}
	return days, nil
}
