package analytics

import (
	"math"

	"github.com/gugan-zemuria/habitctl/internal/constants"
	"github.com/gugan-zemuria/habitctl/internal/models"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

// StatusForDay classifies a calendar day for the heat-map. A day with no
// active habits is always "none"; a past day with zero completions reads
// as "missed", while today and future days stay "none".
func StatusForDay(cal CalendarMap, day, today string, activeHabitCount int) constants.DayStatus {
	if activeHabitCount == 0 {
		return constants.StatusNone
	}
	completed := cal.Count(day)
	switch {
	case completed >= activeHabitCount:
		return constants.StatusComplete
	case completed > 0:
		return constants.StatusPartial
	case utils.IsAfter(today, day):
		return constants.StatusMissed
	default:
		return constants.StatusNone
	}
}

// DashboardStats are the dashboard-wide derived metrics.
type DashboardStats struct {
	TotalHabits    int `json:"totalHabits"`
	CompletedToday int `json:"completedToday"`
	CompletionRate int `json:"completionRate"` // rounded percentage
	LongestStreak  int `json:"longestStreak"`
	ActiveStreaks  int `json:"activeStreaks"`
}

// ComputeStats derives the dashboard statistics from the habit collection
// and the calendar projection. Habits are expected to carry refreshed
// streak fields (see RefreshStreaks). Only active habits count toward the
// completion-rate denominator and the completed-today tally.
func ComputeStats(habits []models.Habit, cal CalendarMap, today string) DashboardStats {
	var stats DashboardStats
	for _, h := range habits {
		if h.Active() {
			stats.TotalHabits++
			if cal.Completed(today, h.ID) {
				stats.CompletedToday++
			}
		}
		if h.LongestStreak > stats.LongestStreak {
			stats.LongestStreak = h.LongestStreak
		}
		if h.CurrentStreak > 0 {
			stats.ActiveStreaks++
		}
	}
	if stats.TotalHabits > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedToday) / float64(stats.TotalHabits) * 100))
	}
	return stats
}
