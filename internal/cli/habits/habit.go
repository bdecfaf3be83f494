// Package habits holds the habit management and reporting commands.
package habits

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/gugan-zemuria/habitctl/internal/analytics"
	"github.com/gugan-zemuria/habitctl/internal/cli"
	"github.com/gugan-zemuria/habitctl/internal/constants"
	"github.com/gugan-zemuria/habitctl/internal/models"
	"github.com/gugan-zemuria/habitctl/internal/utils"
	"github.com/gugan-zemuria/habitctl/internal/validation"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit."`
	List      HabitListCmd      `cmd:"" help:"List habits with filtering and sorting."`
	Edit      HabitEditCmd      `cmd:"" help:"Edit an existing habit."`
	Mark      HabitMarkCmd      `cmd:"" help:"Toggle a habit's completion for a day."`
	Archive   HabitArchiveCmd   `cmd:"" help:"Archive a habit."`
	Unarchive HabitUnarchiveCmd `cmd:"" help:"Unarchive a habit."`
	Delete    HabitDeleteCmd    `cmd:"" help:"Delete a habit (soft delete)."`
	Restore   HabitRestoreCmd   `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name. Omit to fill in a form."`
	Emoji       string `help:"Emoji shown next to the habit." default:""`
	Description string `help:"Short description." default:""`
	Category    string `help:"Category label." default:""`
	Tags        string `help:"Comma-separated tags." default:""`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Name == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&c.Name).Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
				huh.NewInput().Title("Emoji").Value(&c.Emoji).Placeholder(constants.DefaultEmoji),
				huh.NewInput().Title("Description").Value(&c.Description),
				huh.NewInput().Title("Category").Value(&c.Category),
				huh.NewInput().Title("Tags (comma-separated)").Value(&c.Tags),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(c.Name),
		Emoji:       c.Emoji,
		Description: c.Description,
		Category:    strings.TrimSpace(c.Category),
		Tags:        splitTags(c.Tags),
		CreatedAt:   time.Now(),
	}
	if habit.Emoji == "" {
		habit.Emoji = constants.DefaultEmoji
	}

	if err := validation.New().ValidateHabit(habit); err != nil {
		return err
	}

	// Reject duplicates up front for a friendlier error
	if _, err := ctx.Store.GetHabitByName(habit.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", habit.Name)
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s\n", habit.Emoji, habit.Name)
	return nil
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

type HabitListCmd struct {
	Completion string `help:"Filter by today's completion (all|completed|not-completed)." default:"all"`
	Category   string `help:"Filter by category or tag label (all for no filter)." default:"all"`
	Status     string `help:"Filter by archive status (active|archived|all)." default:"active"`
	Sort       string `help:"Sort field (name|streak|created)." default:"name"`
	Order      string `help:"Sort order (asc|desc). Defaults to the field's convention." default:""`
	Deleted    bool   `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	f := models.FilterState{
		Completion: models.CompletionFilter(c.Completion),
		Category:   c.Category,
		Status:     models.StatusFilter(c.Status),
		SortBy:     models.SortField(c.Sort),
		SortOrder:  models.SortOrder(c.Order),
	}
	if f.SortOrder == "" {
		f.SortOrder = f.SortBy.DefaultOrder()
	}
	if err := f.Validate(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(true, c.Deleted)
	if err != nil {
		return err
	}

	sets, err := cli.LoadCompletionSets(ctx.Store)
	if err != nil {
		return err
	}

	today := utils.TodayKey()
	habits = analytics.RefreshStreaks(habits, sets, today)
	habits = analytics.ApplyFiltersAndSort(habits, sets, f, today)

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		mark := "○"
		if sets[habit.ID].Contains(today) {
			mark = "✓"
		}
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		} else if habit.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}
		label := habit.Name
		if habit.Category != "" {
			label += " (" + habit.Category + ")"
		}
		fmt.Printf("%s %s %s%s  streak %d, best %d\n",
			mark, habit.Emoji, label, status, habit.CurrentStreak, habit.LongestStreak)
	}

	return nil
}

type HabitEditCmd struct {
	Name        string  `arg:"" help:"Habit name or ID."`
	NewName     *string `help:"New habit name."`
	Emoji       *string `help:"New emoji."`
	Description *string `help:"New description."`
	Category    *string `help:"New category label."`
	Tags        *string `help:"New comma-separated tags (empty string clears)."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	// With no field flags, fall back to a form prefilled with current values
	if c.NewName == nil && c.Emoji == nil && c.Description == nil && c.Category == nil && c.Tags == nil {
		tags := strings.Join(habit.Tags, ", ")
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Name").Value(&habit.Name).Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
				huh.NewInput().Title("Emoji").Value(&habit.Emoji),
				huh.NewInput().Title("Description").Value(&habit.Description),
				huh.NewInput().Title("Category").Value(&habit.Category),
				huh.NewInput().Title("Tags (comma-separated)").Value(&tags),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		habit.Name = strings.TrimSpace(habit.Name)
		habit.Category = strings.TrimSpace(habit.Category)
		habit.Tags = splitTags(tags)
	}

	if c.NewName != nil {
		habit.Name = strings.TrimSpace(*c.NewName)
	}
	if c.Emoji != nil {
		habit.Emoji = *c.Emoji
	}
	if c.Description != nil {
		habit.Description = *c.Description
	}
	if c.Category != nil {
		habit.Category = strings.TrimSpace(*c.Category)
	}
	if c.Tags != nil {
		habit.Tags = splitTags(*c.Tags)
	}

	if err := validation.New().ValidateHabit(habit); err != nil {
		return err
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitMarkCmd struct {
	Name string `arg:"" help:"Habit name or ID."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitMarkCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	day, err := cli.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	// Future dates are rejected before anything is written
	if utils.IsAfter(day, utils.TodayKey()) {
		return analytics.ErrFutureDate
	}

	completed, err := ctx.Store.ToggleCompletion(habit.ID, day)
	if err != nil {
		return err
	}

	if completed {
		fmt.Printf("✓ Marked %q as done for %s\n", habit.Name, day)
	} else {
		fmt.Printf("○ Unmarked %q for %s\n", habit.Name, day)
	}
	return nil
}

type HabitArchiveCmd struct {
	Name string `arg:"" help:"Habit name or ID."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Archived habit: %s\n", habit.Name)
	return nil
}

type HabitUnarchiveCmd struct {
	Name string `arg:"" help:"Habit name or ID."`
}

func (c *HabitUnarchiveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Unarchived habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name or ID."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (restore with 'habitctl habit restore %s')\n", habit.Name, habit.Name)
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name or ID."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Deleted habits are invisible to name lookup, so search the full set
	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return err
	}

	var target *models.Habit
	for i, h := range habits {
		if h.DeletedAt != nil && (strings.EqualFold(h.Name, c.Name) || h.ID == c.Name) {
			target = &habits[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no deleted habit named %q found", c.Name)
	}

	if err := ctx.Store.RestoreHabit(target.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", target.Name)
	return nil
}
