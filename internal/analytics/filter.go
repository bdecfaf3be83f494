package analytics

import (
	"slices"
	"sort"
	"strings"

	"github.com/gugan-zemuria/habitctl/internal/models"
)

// ApplyFiltersAndSort runs the habit collection through the composed
// filter predicates and then one stable total order. The input slice is
// never mutated; callers get a fresh ordered view they can re-derive at
// any time. sets maps habit ID to its completion index; habits missing
// from it fall back to their embedded completion days.
func ApplyFiltersAndSort(habits []models.Habit, sets map[string]DateSet, f models.FilterState, today string) []models.Habit {
	// Resolve each habit's index once; the completion filter and the
	// streak sort both probe it.
	resolved := make(map[string]DateSet, len(habits))
	for _, h := range habits {
		resolved[h.ID] = resolveDateSet(h, sets)
	}

	out := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if !passesCompletion(h, resolved[h.ID], f.Completion, today) {
			continue
		}
		if !passesCategory(h, f.Category) {
			continue
		}
		if !passesStatus(h, f.Status) {
			continue
		}
		out = append(out, h)
	}

	sortHabits(out, resolved, f.SortBy, f.SortOrder, today)
	return out
}

func passesCompletion(h models.Habit, set DateSet, filter models.CompletionFilter, today string) bool {
	if filter == models.CompletionAll {
		return true
	}
	done := set.Contains(today)
	if filter == models.CompletionDone {
		return done
	}
	return !done
}

// passesCategory matches the label against the habit's category or any of
// its tags: the two share one filter namespace.
func passesCategory(h models.Habit, label string) bool {
	if label == models.CategoryAll {
		return true
	}
	return h.Category == label || slices.Contains(h.Tags, label)
}

func passesStatus(h models.Habit, filter models.StatusFilter) bool {
	switch filter {
	case models.StatusActive:
		return h.ArchivedAt == nil
	case models.StatusArchived:
		return h.ArchivedAt != nil
	default:
		return true
	}
}

// sortHabits applies the chosen total order in place. Equal keys keep
// their relative input order.
func sortHabits(habits []models.Habit, sets map[string]DateSet, field models.SortField, order models.SortOrder, today string) {
	var less func(a, b models.Habit) bool
	switch field {
	case models.SortByStreak:
		less = func(a, b models.Habit) bool {
			return CurrentStreak(sets[a.ID], today) < CurrentStreak(sets[b.ID], today)
		}
	case models.SortByCreated:
		less = func(a, b models.Habit) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	default:
		less = func(a, b models.Habit) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(habits, func(i, j int) bool {
		if order == models.OrderDesc {
			return less(habits[j], habits[i])
		}
		return less(habits[i], habits[j])
	})
}

// Categories collects the distinct category and tag labels across the
// collection, sorted. These populate the category filter options.
func Categories(habits []models.Habit) []string {
	seen := make(map[string]struct{})
	for _, h := range habits {
		if h.Category != "" {
			seen[h.Category] = struct{}{}
		}
		for _, tag := range h.Tags {
			if tag != "" {
				seen[tag] = struct{}{}
			}
		}
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
