package habits

import (
	"fmt"

	"github.com/gugan-zemuria/habitctl/internal/analytics"
	"github.com/gugan-zemuria/habitctl/internal/cli"
)

type CategoriesCmd struct{}

func (c *CategoriesCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(true, false)
	if err != nil {
		return err
	}

	categories := analytics.Categories(habits)
	if len(categories) == 0 {
		fmt.Println("No categories or tags in use.")
		return nil
	}

	for _, category := range categories {
		fmt.Println(category)
	}
	return nil
}
