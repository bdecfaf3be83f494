package habits

import (
	"fmt"

	"github.com/gugan-zemuria/habitctl/internal/analytics"
	"github.com/gugan-zemuria/habitctl/internal/cli"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
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

	today := utils.TodayKey()
	completions, err := ctx.Store.GetCompletionsForDay(today)
	if err != nil {
		return err
	}

	done := make(map[string]bool, len(completions))
	for _, completion := range completions {
		done[completion.HabitID] = true
	}

	cal := analytics.CalendarMapFromAggregated(map[string][]string{today: idsOf(done)})
	status := analytics.StatusForDay(cal, today, today, len(habits))

	fmt.Printf("Today (%s): %s\n\n", today, status)
	completed := 0
	for _, habit := range habits {
		mark := "○"
		if done[habit.ID] {
			mark = "✓"
			completed++
		}
		fmt.Printf("  %s %s %s\n", mark, habit.Emoji, habit.Name)
	}
	fmt.Printf("\n%d of %d completed\n", completed, len(habits))

	return nil
}

func idsOf(done map[string]bool) []string {
	ids := make([]string, 0, len(done))
	for id := range done {
		ids = append(ids, id)
	}
	return ids
}
