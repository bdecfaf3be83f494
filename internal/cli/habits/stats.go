package habits

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/gugan-zemuria/habitctl/internal/analytics"
	"github.com/gugan-zemuria/habitctl/internal/cli"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

var (
	statCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Align(lipgloss.Center)

	statValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(true, false)
	if err != nil {
		return err
	}

	sets, err := cli.LoadCompletionSets(ctx.Store)
	if err != nil {
		return err
	}

	today := utils.TodayKey()
	habits = analytics.RefreshStreaks(habits, sets, today)

	days := make(map[string][]string, len(sets))
	for id, set := range sets {
		days[id] = set.Days()
	}
	cal := analytics.BuildCalendarMap(days)

	stats := analytics.ComputeStats(habits, cal, today)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard(fmt.Sprintf("%d", stats.TotalHabits), "habits"),
		statCard(fmt.Sprintf("%d", stats.CompletedToday), "done today"),
		statCard(fmt.Sprintf("%d%%", stats.CompletionRate), "today's rate"),
		statCard(fmt.Sprintf("%d", stats.LongestStreak), "best streak"),
		statCard(fmt.Sprintf("%d", stats.ActiveStreaks), "active streaks"),
	)
	fmt.Println(cards)

	return nil
}

func statCard(value, label string) string {
	content := statValueStyle.Render(value) + "\n" + statLabelStyle.Render(label)
	return statCardStyle.Render(content)
}
