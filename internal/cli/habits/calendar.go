package habits

import (
	"fmt"
	"time"

	"github.com/gugan-zemuria/habitctl/internal/analytics"
	"github.com/gugan-zemuria/habitctl/internal/cli"
	"github.com/gugan-zemuria/habitctl/internal/constants"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

type CalendarCmd struct {
	Show CalendarShowCmd `cmd:"" default:"1" help:"Show a month's completion heat-map."`
	Set  CalendarSetCmd  `cmd:"" help:"Set the exact habits completed on a date."`
}

type CalendarShowCmd struct {
	Month string `help:"Month in YYYY-MM format (default: current month)." default:""`
}

func (c *CalendarShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	month := time.Now()
	if c.Month != "" {
		var err error
		month, err = time.ParseInLocation(constants.MonthFormat, c.Month, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month format: %s (expected YYYY-MM)", c.Month)
		}
	}

	habits, err := ctx.Store.GetAllHabits(false, false)
	if err != nil {
		return err
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	calendar, err := ctx.Store.GetCalendarCompletions(utils.DateKey(first), utils.DateKey(last))
	if err != nil {
		return err
	}
	cal := analytics.CalendarMapFromAggregated(calendar)
	today := utils.TodayKey()

	fmt.Println(first.Format("January 2006"))
	fmt.Println("Mo Tu We Th Fr Sa Su")

	// Leading blanks up to the first weekday (weeks start Monday)
	offset := (int(first.Weekday()) + 6) % 7
	for i := 0; i < offset; i++ {
		fmt.Print("   ")
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		day := utils.DateKey(d)
		cell := fmt.Sprintf("%2d", d.Day())
		switch analytics.StatusForDay(cal, day, today, len(habits)) {
		case constants.StatusComplete:
			cell = "██"
		case constants.StatusPartial:
			cell = "▒▒"
		case constants.StatusMissed:
			cell = "··"
		}
		fmt.Printf("%s ", cell)
		if (offset+d.Day())%7 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()

	fmt.Println("\n██ all done  ▒▒ partial  ·· missed")
	return nil
}

type CalendarSetCmd struct {
	Date   string   `arg:"" help:"Date in YYYY-MM-DD format."`
	Habits []string `arg:"" optional:"" help:"Habit names completed on that date (empty clears the day)."`
}

func (c *CalendarSetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := cli.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	if utils.IsAfter(day, utils.TodayKey()) {
		return analytics.ErrFutureDate
	}

	ids := make([]string, 0, len(c.Habits))
	for _, name := range c.Habits {
		habit, err := ctx.ResolveHabit(name)
		if err != nil {
			return err
		}
		ids = append(ids, habit.ID)
	}

	if err := ctx.Store.ReplaceCompletionsForDay(day, ids); err != nil {
		return err
	}

	fmt.Printf("Set %d completion(s) for %s\n", len(ids), day)
	return nil
}
