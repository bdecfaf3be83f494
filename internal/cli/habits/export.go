package habits

import (
	"fmt"
	"os"
	"time"

	"github.com/gugan-zemuria/habitctl/internal/cli"
	"github.com/gugan-zemuria/habitctl/internal/export"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

type ExportCmd struct {
	Log      ExportLogCmd      `cmd:"" help:"Export the per-habit completion log."`
	Calendar ExportCalendarCmd `cmd:"" help:"Export the date-keyed completion log."`
	Summary  ExportSummaryCmd  `cmd:"" help:"Export per-habit summary statistics."`
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

type ExportLogCmd struct {
	Output   string `help:"Output file path (default: stdout)." short:"o" default:""`
	Archived bool   `help:"Include archived habits."`
}

func (c *ExportLogCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(c.Archived, false)
	if err != nil {
		return err
	}

	days, err := cli.LoadCompletionDays(ctx.Store)
	if err != nil {
		return err
	}

	out, done, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer done()

	if err := export.WriteCompletionLog(out, habits, days); err != nil {
		return err
	}
	if c.Output != "" && c.Output != "-" {
		fmt.Printf("Exported completion log to %s\n", c.Output)
	}
	return nil
}

type ExportCalendarCmd struct {
	Output string `help:"Output file path (default: stdout)." short:"o" default:""`
	From   string `help:"Range start in YYYY-MM-DD format (default: 30 days ago)." default:""`
	To     string `help:"Range end in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ExportCalendarCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	to, err := cli.ResolveDay(c.To)
	if err != nil {
		return err
	}
	from := c.From
	if from == "" {
		from = utils.DateKey(time.Now().AddDate(0, 0, -30))
	} else if from, err = utils.NormalizeDateKey(from); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.From)
	}

	habits, err := ctx.Store.GetAllHabits(true, false)
	if err != nil {
		return err
	}

	calendar, err := ctx.Store.GetCalendarCompletions(from, to)
	if err != nil {
		return err
	}

	out, done, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer done()

	if err := export.WriteCalendarLog(out, calendar, habits); err != nil {
		return err
	}
	if c.Output != "" && c.Output != "-" {
		fmt.Printf("Exported calendar log to %s\n", c.Output)
	}
	return nil
}

type ExportSummaryCmd struct {
	Output   string `help:"Output file path (default: stdout)." short:"o" default:""`
	Archived bool   `help:"Include archived habits."`
}

func (c *ExportSummaryCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(c.Archived, false)
	if err != nil {
		return err
	}

	days, err := cli.LoadCompletionDays(ctx.Store)
	if err != nil {
		return err
	}

	out, done, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer done()

	if err := export.WriteSummary(out, habits, days, time.Now()); err != nil {
		return err
	}
	if c.Output != "" && c.Output != "-" {
		fmt.Printf("Exported summary to %s\n", c.Output)
	}
	return nil
}
