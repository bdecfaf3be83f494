package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/gugan-zemuria/habitctl/internal/models"
)

const filterToday = "2024-10-31"

func filterFixture() ([]models.Habit, map[string]DateSet) {
	base := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.Local)
	archivedAt := base.AddDate(0, 0, 20)

	habits := []models.Habit{
		{ID: "h1", Name: "beta", Category: "health", CreatedAt: base},
		{ID: "h2", Name: "Alpha", Category: "mind", Tags: []string{"morning"}, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "h3", Name: "alpha", Category: "health", CreatedAt: base.AddDate(0, 0, 2)},
		{ID: "h4", Name: "Gamma", Category: "mind", CreatedAt: base.AddDate(0, 0, 3), ArchivedAt: &archivedAt},
	}
	sets := map[string]DateSet{
		"h1": NewDateSet("2024-10-29", "2024-10-30", "2024-10-31"), // streak 3
		"h2": NewDateSet("2024-10-31"),                             // streak 1
		"h3": NewDateSet("2024-10-30"),                             // streak 0, not today
		"h4": NewDateSet(),
	}
	return habits, sets
}

func ids(habits []models.Habit) []string {
	out := make([]string, len(habits))
	for i, h := range habits {
		out[i] = h.ID
	}
	return out
}

func TestApplyFiltersAndSortDefaultIsNoOp(t *testing.T) {
	habits, sets := filterFixture()

	got := ApplyFiltersAndSort(habits, sets, models.DefaultFilterState(), filterToday)

	// Every active habit survives, ordered by case-insensitive name; the
	// two "alpha" spellings keep their input order (stable sort).
	want := []string{"h2", "h3", "h1"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("default filter order = %v, want %v", ids(got), want)
	}
}

func TestApplyFiltersAndSortDoesNotMutateInput(t *testing.T) {
	habits, sets := filterFixture()
	before := ids(habits)

	f := models.DefaultFilterState()
	f.SortBy = models.SortByStreak
	f.SortOrder = models.OrderDesc
	ApplyFiltersAndSort(habits, sets, f, filterToday)

	if !reflect.DeepEqual(ids(habits), before) {
		t.Errorf("input order changed: %v, want %v", ids(habits), before)
	}
}

func TestCompletionFilter(t *testing.T) {
	habits, sets := filterFixture()

	f := models.DefaultFilterState()
	f.Completion = models.CompletionDone
	got := ApplyFiltersAndSort(habits, sets, f, filterToday)
	if want := []string{"h2", "h1"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("completed today = %v, want %v", ids(got), want)
	}

	f.Completion = models.CompletionNotDone
	got = ApplyFiltersAndSort(habits, sets, f, filterToday)
	if want := []string{"h3"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("not completed today = %v, want %v", ids(got), want)
	}
}

func TestCategoryFilterMatchesTags(t *testing.T) {
	habits, sets := filterFixture()

	f := models.DefaultFilterState()
	f.Category = "health"
	got := ApplyFiltersAndSort(habits, sets, f, filterToday)
	if want := []string{"h3", "h1"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("category health = %v, want %v", ids(got), want)
	}

	// Tags share the category namespace.
	f.Category = "morning"
	got = ApplyFiltersAndSort(habits, sets, f, filterToday)
	if want := []string{"h2"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("tag morning = %v, want %v", ids(got), want)
	}
}

func TestStatusFilter(t *testing.T) {
	habits, sets := filterFixture()

	f := models.DefaultFilterState()
	f.Status = models.StatusArchived
	got := ApplyFiltersAndSort(habits, sets, f, filterToday)
	if want := []string{"h4"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("archived = %v, want %v", ids(got), want)
	}

	f.Status = models.StatusAll
	got = ApplyFiltersAndSort(habits, sets, f, filterToday)
	if len(got) != 4 {
		t.Errorf("status all kept %d habits, want 4", len(got))
	}
}

func TestSortByStreak(t *testing.T) {
	habits, sets := filterFixture()

	f := models.DefaultFilterState()
	f.SortBy = models.SortByStreak
	f.SortOrder = models.OrderDesc
	got := ApplyFiltersAndSort(habits, sets, f, filterToday)
	if want := []string{"h1", "h2", "h3"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("streak desc = %v, want %v", ids(got), want)
	}

	f.SortOrder = models.OrderAsc
	got = ApplyFiltersAndSort(habits, sets, f, filterToday)
	if want := []string{"h3", "h2", "h1"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("streak asc = %v, want %v", ids(got), want)
	}
}

func TestSortByCreated(t *testing.T) {
	habits, sets := filterFixture()

	f := models.DefaultFilterState()
	f.SortBy = models.SortByCreated
	f.SortOrder = models.OrderDesc
	got := ApplyFiltersAndSort(habits, sets, f, filterToday)
	if want := []string{"h3", "h2", "h1"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("created desc = %v, want %v", ids(got), want)
	}
}

func TestSortByNameDesc(t *testing.T) {
	habits, sets := filterFixture()

	f := models.DefaultFilterState()
	f.SortOrder = models.OrderDesc
	got := ApplyFiltersAndSort(habits, sets, f, filterToday)
	// Descending reverses the comparator; the equal-ignoring-case pair
	// still keeps input order relative to each other.
	if want := []string{"h1", "h2", "h3"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("name desc = %v, want %v", ids(got), want)
	}
}

func TestCategories(t *testing.T) {
	habits, _ := filterFixture()

	got := Categories(habits)
	want := []string{"health", "mind", "morning"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}

	if got := Categories(nil); len(got) != 0 {
		t.Errorf("Categories(nil) = %v, want empty", got)
	}
}
