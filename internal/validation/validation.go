package validation

import (
	"fmt"
	"strings"

	"github.com/gugan-zemuria/habitctl/internal/models"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyHabitName      ConflictType = "empty_habit_name"
	ConflictDuplicateHabitName  ConflictType = "duplicate_habit_name"
	ConflictMissingHabitID      ConflictType = "missing_habit_id"
	ConflictInvalidDate         ConflictType = "invalid_date"
	ConflictFutureCompletion    ConflictType = "future_completion"
	ConflictDuplicateCompletion ConflictType = "duplicate_completion"
	ConflictOrphanedCompletion  ConflictType = "orphaned_completion"
)

// Conflict represents a detected integrity problem in habits or completions
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	Items       []string // Habit names involved
	HabitIDs    []string // IDs of habits involved (for auto-fixing)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates habits and completion records for integrity
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabit checks a single habit before it is written.
func (v *Validator) ValidateHabit(h models.Habit) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	return nil
}

// ValidateHabits checks a full habit set for structural problems.
func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	nameCount := make(map[string][]string)
	for _, h := range habits {
		if h.DeletedAt != nil {
			continue
		}
		if h.ID == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingHabitID,
				Description: fmt.Sprintf("Habit %q has no ID", h.Name),
				Items:       []string{h.Name},
			})
		}
		if strings.TrimSpace(h.Name) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyHabitName,
				Description: fmt.Sprintf("Habit %s has an empty name", h.ID),
				HabitIDs:    []string{h.ID},
			})
			continue
		}
		key := strings.ToLower(h.Name)
		nameCount[key] = append(nameCount[key], h.ID)
	}

	for name, ids := range nameCount {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitName,
				Description: fmt.Sprintf("Duplicate habit name: %q (IDs: %v)", name, ids),
				Items:       []string{name},
				HabitIDs:    ids,
			})
		}
	}

	return result
}

// ValidateCompletions checks completion records against the habit set:
// malformed or future dates, duplicate (habit, day) pairs, and records
// pointing at habits that no longer exist. today scopes the future check.
func (v *Validator) ValidateCompletions(habits []models.Habit, completions []models.Completion, today string) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	known := make(map[string]string, len(habits))
	for _, h := range habits {
		known[h.ID] = h.Name
	}

	seen := make(map[string]bool)
	for _, c := range completions {
		name, ok := known[c.HabitID]
		if !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanedCompletion,
				Description: fmt.Sprintf("Completion %s references unknown habit %s", c.ID, c.HabitID),
				Date:        c.Day,
				HabitIDs:    []string{c.HabitID},
			})
			continue
		}

		day, err := utils.NormalizeDateKey(c.Day)
		if err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Habit %q has a completion with invalid date: %s", name, c.Day),
				Date:        c.Day,
				Items:       []string{name},
				HabitIDs:    []string{c.HabitID},
			})
			continue
		}

		if utils.IsAfter(day, today) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictFutureCompletion,
				Description: fmt.Sprintf("Habit %q has a future-dated completion: %s", name, day),
				Date:        day,
				Items:       []string{name},
				HabitIDs:    []string{c.HabitID},
			})
		}

		pair := c.HabitID + "/" + day
		if seen[pair] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateCompletion,
				Description: fmt.Sprintf("Habit %q is completed more than once on %s", name, day),
				Date:        day,
				Items:       []string{name},
				HabitIDs:    []string{c.HabitID},
			})
		}
		seen[pair] = true
	}

	return result
}
