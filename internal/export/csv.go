// Package export renders habit analytics as flat CSV records. Quoting is
// handled by encoding/csv, so values containing delimiters or quotes
// round-trip through any standard tabular parser.
package export

import (
	"encoding/csv"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/gugan-zemuria/habitctl/internal/analytics"
	"github.com/gugan-zemuria/habitctl/internal/models"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

var completionLogHeader = []string{
	"Habit Name", "Description", "Emoji", "Category", "Created Date",
	"Current Streak", "Longest Streak", "Total Completions",
	"Completion Date", "Is Archived",
}

var summaryHeader = []string{
	"Habit Name", "Description", "Category", "Created Date",
	"Current Streak", "Longest Streak", "Total Completions",
	"Success Rate (%)", "Days Since Created", "Status",
}

var calendarLogHeader = []string{"date", "habit_id", "habit_name", "category"}

// WriteCompletionLog writes the detailed per-habit log: one row per
// (habit, completion day). A habit with zero completions still emits
// exactly one row with an empty completion-date field. completions maps
// habit ID to raw completion dates.
func WriteCompletionLog(w io.Writer, habits []models.Habit, completions map[string][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(completionLogHeader); err != nil {
		return err
	}

	for _, h := range habits {
		days := analytics.NewDateSet(completions[h.ID]...).Days()
		base := []string{
			h.Name,
			h.Description,
			h.Emoji,
			h.Category,
			utils.DateKey(h.CreatedAt),
			strconv.Itoa(h.CurrentStreak),
			strconv.Itoa(h.LongestStreak),
			strconv.Itoa(len(days)),
			"", // completion date, filled per row
			yesNo(h.ArchivedAt != nil),
		}

		if len(days) == 0 {
			if err := cw.Write(base); err != nil {
				return err
			}
			continue
		}
		for _, day := range days {
			row := make([]string, len(base))
			copy(row, base)
			row[8] = day
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCalendarLog writes the date-keyed log: one row per (date, habit)
// pair, dates ascending, plus a placeholder row for any date present with
// zero completions. calendar is the pre-aggregated date → habit-IDs form.
func WriteCalendarLog(w io.Writer, calendar map[string][]string, habits []models.Habit) error {
	names := make(map[string]string, len(habits))
	categories := make(map[string]string, len(habits))
	for _, h := range habits {
		names[h.ID] = h.Name
		categories[h.ID] = h.Category
	}

	dates := make([]string, 0, len(calendar))
	for d := range calendar {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	cw := csv.NewWriter(w)
	if err := cw.Write(calendarLogHeader); err != nil {
		return err
	}

	for _, date := range dates {
		ids := append([]string(nil), calendar[date]...)
		if len(ids) == 0 {
			if err := cw.Write([]string{date, "", "", ""}); err != nil {
				return err
			}
			continue
		}
		sort.Strings(ids)
		for _, id := range ids {
			if err := cw.Write([]string{date, id, names[id], categories[id]}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummary writes one row per habit with lifetime statistics. The
// success rate is total completions over days since creation, rounded to
// a whole percentage, 0 when the habit is younger than a day.
func WriteSummary(w io.Writer, habits []models.Habit, completions map[string][]string, now time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}

	for _, h := range habits {
		total := len(analytics.NewDateSet(completions[h.ID]...).Days())
		daysSince := utils.DaysBetween(h.CreatedAt, now)
		rate := 0
		if daysSince > 0 {
			rate = int(math.Round(float64(total) / float64(daysSince) * 100))
		}

		status := "Active"
		if h.ArchivedAt != nil {
			status = "Archived"
		}

		row := []string{
			h.Name,
			h.Description,
			h.Category,
			utils.DateKey(h.CreatedAt),
			strconv.Itoa(h.CurrentStreak),
			strconv.Itoa(h.LongestStreak),
			strconv.Itoa(total),
			strconv.Itoa(rate),
			strconv.Itoa(daysSince),
			status,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
