package models

import "time"

// Habit represents a recurring practice to track
type Habit struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Emoji       string     `json:"emoji,omitempty"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`

	// Derived from the completion set; cached on the struct so list/sort
	// surfaces don't recompute per render. Refreshed by analytics.RefreshStreaks.
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`

	// Completions optionally embeds the habit's completion day keys
	// (YYYY-MM-DD). Stores may omit it; consumers must fall back to
	// fetching completions separately.
	Completions []string `json:"completions,omitempty"`
}

// Active reports whether the habit counts toward completion-rate
// denominators (not archived, not deleted).
func (h Habit) Active() bool {
	return h.ArchivedAt == nil && h.DeletedAt == nil
}

// Completion represents a single day's record of a habit. At most one
// completion exists per (HabitID, Day) pair; unmarking deletes the row.
type Completion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
