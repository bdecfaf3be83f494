package validation

import (
	"testing"
	"time"

	"github.com/gugan-zemuria/habitctl/internal/models"
)

func TestValidateHabit_RejectsBlankName(t *testing.T) {
	v := New()

	if err := v.ValidateHabit(models.Habit{Name: "   "}); err == nil {
		t.Error("expected error for blank name")
	}
	if err := v.ValidateHabit(models.Habit{Name: "Read"}); err != nil {
		t.Errorf("unexpected error for valid habit: %v", err)
	}
}

func TestValidateHabits_DetectsDuplicateNames(t *testing.T) {
	v := New()

	habits := []models.Habit{
		{ID: "h1", Name: "Read"},
		{ID: "h2", Name: "read"},
		{ID: "h3", Name: "Run"},
	}

	result := v.ValidateHabits(habits)

	if !result.HasConflicts() {
		t.Fatal("expected duplicate-name conflict")
	}
	if result.Conflicts[0].Type != ConflictDuplicateHabitName {
		t.Errorf("conflict type = %s, want %s", result.Conflicts[0].Type, ConflictDuplicateHabitName)
	}
}

func TestValidateHabits_IgnoresDeleted(t *testing.T) {
	v := New()
	now := time.Now()

	habits := []models.Habit{
		{ID: "h1", Name: "Read"},
		{ID: "h2", Name: "Read", DeletedAt: &now},
	}

	if result := v.ValidateHabits(habits); result.HasConflicts() {
		t.Errorf("expected no conflicts, got: %s", result.FormatReport())
	}
}

func TestValidateCompletions(t *testing.T) {
	v := New()
	habits := []models.Habit{{ID: "h1", Name: "Read"}}
	today := "2024-10-15"

	completions := []models.Completion{
		{ID: "c1", HabitID: "h1", Day: "2024-10-14"},
		{ID: "c2", HabitID: "h1", Day: "2024-10-14T09:00:00.000Z"}, // duplicate of c1
		{ID: "c3", HabitID: "h1", Day: "2024-10-20"},               // future
		{ID: "c4", HabitID: "h1", Day: "not-a-date"},
		{ID: "c5", HabitID: "gone", Day: "2024-10-01"},
	}

	result := v.ValidateCompletions(habits, completions, today)

	counts := map[ConflictType]int{}
	for _, c := range result.Conflicts {
		counts[c.Type]++
	}

	want := map[ConflictType]int{
		ConflictDuplicateCompletion: 1,
		ConflictFutureCompletion:    1,
		ConflictInvalidDate:         1,
		ConflictOrphanedCompletion:  1,
	}
	for typ, n := range want {
		if counts[typ] != n {
			t.Errorf("%s conflicts = %d, want %d\n%s", typ, counts[typ], n, result.FormatReport())
		}
	}
	if len(result.Conflicts) != 4 {
		t.Errorf("total conflicts = %d, want 4", len(result.Conflicts))
	}
}

func TestValidateCompletions_CleanSet(t *testing.T) {
	v := New()
	habits := []models.Habit{{ID: "h1", Name: "Read"}}

	completions := []models.Completion{
		{ID: "c1", HabitID: "h1", Day: "2024-10-14"},
		{ID: "c2", HabitID: "h1", Day: "2024-10-15"},
	}

	if result := v.ValidateCompletions(habits, completions, "2024-10-15"); result.HasConflicts() {
		t.Errorf("expected no conflicts, got: %s", result.FormatReport())
	}
}
