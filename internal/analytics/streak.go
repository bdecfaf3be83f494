package analytics

import (
	"github.com/gugan-zemuria/habitctl/internal/models"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

// CurrentStreak walks backward one calendar day at a time starting at
// today and counts consecutive completed days. The walk stops at the
// first gap, so completing yesterday but not today yields 0: today is
// authoritative the instant it is evaluated.
func CurrentStreak(s DateSet, today string) int {
	if len(s) == 0 {
		return 0
	}
	day, err := utils.ParseDateKey(today)
	if err != nil {
		return 0
	}
	streak := 0
	for streak < len(s) {
		if !s.Contains(utils.DateKey(day)) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak scans the completion dates ascending and tracks the
// longest run of consecutive calendar days.
func LongestStreak(s DateSet) int {
	days := s.Days()
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	prev, err := utils.ParseDateKey(days[0])
	if err != nil {
		return 0
	}
	for _, d := range days[1:] {
		cur, err := utils.ParseDateKey(d)
		if err != nil {
			continue
		}
		if utils.DaysBetween(prev, cur) == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
		prev = cur
	}
	return longest
}

// RefreshStreaks returns a copy of the habit collection with the cached
// streak fields recomputed from the completion index. The current streak
// is replaced outright, so unmarking today drops it to whatever a fresh
// computation yields; the longest streak never decreases over a habit's
// lifetime.
func RefreshStreaks(habits []models.Habit, sets map[string]DateSet, today string) []models.Habit {
	out := make([]models.Habit, len(habits))
	copy(out, habits)
	for i := range out {
		set := resolveDateSet(out[i], sets)
		out[i].CurrentStreak = CurrentStreak(set, today)
		if longest := LongestStreak(set); longest > out[i].LongestStreak {
			out[i].LongestStreak = longest
		}
	}
	return out
}

// resolveDateSet looks the habit's completion index up in sets, falling
// back to the habit's embedded completion days when the lookup misses.
func resolveDateSet(h models.Habit, sets map[string]DateSet) DateSet {
	if set, ok := sets[h.ID]; ok {
		return set
	}
	return NewDateSet(h.Completions...)
}
