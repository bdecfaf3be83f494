// Package analytics derives habit views from completion history: the
// completion index, streak calculation, calendar aggregation and the
// filter/sort pipeline. Everything here is a pure function over its
// inputs; only the storage collaborator mutates state.
package analytics

import (
	"errors"
	"sort"

	"github.com/gugan-zemuria/habitctl/internal/models"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

// ErrFutureDate is returned when a caller tries to record or remove a
// completion dated after today. The mutation must not reach persistence.
var ErrFutureDate = errors.New("cannot record a completion for a future date")

// DateSet is a habit's completion history materialized for O(1) membership
// checks. The weekly and calendar grids probe it once per cell per render.
type DateSet map[string]struct{}

// NewDateSet normalizes raw completion dates (bare YYYY-MM-DD keys or
// ISO-8601 timestamps) into a set. Records without a parseable date are
// skipped so one corrupt row cannot blank out a whole dashboard.
func NewDateSet(days ...string) DateSet {
	s := make(DateSet, len(days))
	for _, d := range days {
		key, err := utils.NormalizeDateKey(d)
		if err != nil {
			continue
		}
		s[key] = struct{}{}
	}
	return s
}

// DateSetFromCompletions builds the index from stored completion records.
func DateSetFromCompletions(cs []models.Completion) DateSet {
	days := make([]string, len(cs))
	for i, c := range cs {
		days[i] = c.Day
	}
	return NewDateSet(days...)
}

// Contains reports whether the habit was completed on the given day.
func (s DateSet) Contains(day string) bool {
	_, ok := s[day]
	return ok
}

// Days returns the distinct completion dates in ascending order.
func (s DateSet) Days() []string {
	days := make([]string, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

// Toggle flips the completion for one day: present → removed, absent →
// inserted. Days after today are rejected with ErrFutureDate. The returned
// bool reports whether the day is marked after the toggle.
func (s DateSet) Toggle(day, today string) (bool, error) {
	key, err := utils.NormalizeDateKey(day)
	if err != nil {
		return false, err
	}
	if utils.IsAfter(key, today) {
		return false, ErrFutureDate
	}
	if _, ok := s[key]; ok {
		delete(s, key)
		return false, nil
	}
	s[key] = struct{}{}
	return true, nil
}

// CalendarMap projects completions onto the calendar: date key → set of
// habit IDs completed that date. It is rebuilt on demand and never
// authoritative; the completion records are the source of truth.
type CalendarMap map[string]map[string]struct{}

// BuildCalendarMap converts per-habit completion dates into the calendar
// projection. Dates with zero habits are simply absent.
func BuildCalendarMap(completionsByHabit map[string][]string) CalendarMap {
	cal := make(CalendarMap)
	for habitID, days := range completionsByHabit {
		for _, d := range days {
			key, err := utils.NormalizeDateKey(d)
			if err != nil {
				continue
			}
			cal.add(key, habitID)
		}
	}
	return cal
}

// CalendarMapFromAggregated adopts the persistence collaborator's
// pre-aggregated date → habit-IDs form. The result is indistinguishable
// from BuildCalendarMap over the equivalent raw completions.
func CalendarMapFromAggregated(agg map[string][]string) CalendarMap {
	cal := make(CalendarMap, len(agg))
	for day, ids := range agg {
		key, err := utils.NormalizeDateKey(day)
		if err != nil {
			continue
		}
		for _, id := range ids {
			cal.add(key, id)
		}
	}
	return cal
}

func (c CalendarMap) add(day, habitID string) {
	ids, ok := c[day]
	if !ok {
		ids = make(map[string]struct{})
		c[day] = ids
	}
	ids[habitID] = struct{}{}
}

// Completed reports whether the habit has a completion on the given day.
func (c CalendarMap) Completed(day, habitID string) bool {
	_, ok := c[day][habitID]
	return ok
}

// Count returns how many habits were completed on the given day.
func (c CalendarMap) Count(day string) int {
	return len(c[day])
}

// Days returns the dates carrying at least one completion, ascending.
func (c CalendarMap) Days() []string {
	days := make([]string, 0, len(c))
	for d := range c {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

// IDs returns the habit IDs completed on the given day, sorted.
func (c CalendarMap) IDs(day string) []string {
	set, ok := c[day]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
