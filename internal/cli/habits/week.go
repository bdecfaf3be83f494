package habits

import (
	"fmt"
	"strings"

	"github.com/gugan-zemuria/habitctl/internal/analytics"
	"github.com/gugan-zemuria/habitctl/internal/cli"
	"github.com/gugan-zemuria/habitctl/internal/constants"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

type WeekCmd struct{}

// Run prints a per-habit grid of the last seven days, oldest first.
func (c *WeekCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false, false)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'habitctl habit add'.")
		return nil
	}

	days := utils.DaysBack(constants.WeekPreviewDays)
	calendar, err := ctx.Store.GetCalendarCompletions(days[0], days[len(days)-1])
	if err != nil {
		return err
	}
	cal := analytics.CalendarMapFromAggregated(calendar)

	nameWidth := 0
	for _, habit := range habits {
		if len(habit.Name) > nameWidth {
			nameWidth = len(habit.Name)
		}
	}

	// Header row: weekday initials
	fmt.Printf("%*s  ", nameWidth, "")
	for _, day := range days {
		t, err := utils.ParseDateKey(day)
		if err != nil {
			return err
		}
		fmt.Printf("%s ", t.Format("Mon")[:1])
	}
	fmt.Println()

	for _, habit := range habits {
		var row strings.Builder
		for _, day := range days {
			if cal.Completed(day, habit.ID) {
				row.WriteString("■ ")
			} else {
				row.WriteString("· ")
			}
		}
		fmt.Printf("%*s  %s\n", nameWidth, habit.Name, row.String())
	}

	today := days[len(days)-1]
	fmt.Println()
	for _, day := range days {
		status := analytics.StatusForDay(cal, day, today, len(habits))
		fmt.Printf("%s: %s\n", day, status)
	}

	return nil
}
