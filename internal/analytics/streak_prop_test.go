package analytics

import (
	"reflect"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/gugan-zemuria/habitctl/internal/utils"
)

const propToday = "2024-10-31"

func propTodayTime() time.Time {
	return time.Date(2024, time.October, 31, 0, 0, 0, 0, time.Local)
}

func TestLongestAtLeastCurrent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		offsets := rapid.SliceOfN(rapid.IntRange(0, 60), 0, 40).Draw(t, "offsets")

		days := make([]string, len(offsets))
		for i, off := range offsets {
			days[i] = utils.DateKey(propTodayTime().AddDate(0, 0, -off))
		}
		set := NewDateSet(days...)

		current := CurrentStreak(set, propToday)
		longest := LongestStreak(set)
		if longest < current {
			t.Fatalf("longest streak %d < current streak %d for %v", longest, current, set.Days())
		}
		if current < 0 || longest < 0 {
			t.Fatalf("negative streak: current=%d longest=%d", current, longest)
		}
	})
}

func TestCurrentStreakEqualsContiguousPrefix(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(1, 30).Draw(t, "k")

		// today .. today-(k-1) present, today-k deliberately absent, plus
		// optional noise strictly older than the gap.
		days := make([]string, 0, k)
		for i := 0; i < k; i++ {
			days = append(days, utils.DateKey(propTodayTime().AddDate(0, 0, -i)))
		}
		for _, off := range rapid.SliceOfN(rapid.IntRange(k+2, 90), 0, 10).Draw(t, "noise") {
			days = append(days, utils.DateKey(propTodayTime().AddDate(0, 0, -off)))
		}

		if got := CurrentStreak(NewDateSet(days...), propToday); got != k {
			t.Fatalf("CurrentStreak() = %d, want %d", got, k)
		}
	})
}

func TestToggleTwiceRestoresSet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		offsets := rapid.SliceOfN(rapid.IntRange(0, 30), 0, 20).Draw(t, "offsets")
		day := utils.DateKey(propTodayTime().AddDate(0, 0, -rapid.IntRange(0, 35).Draw(t, "toggleOff")))

		days := make([]string, len(offsets))
		for i, off := range offsets {
			days[i] = utils.DateKey(propTodayTime().AddDate(0, 0, -off))
		}
		set := NewDateSet(days...)
		before := set.Days()

		for i := 0; i < 2; i++ {
			if _, err := set.Toggle(day, propToday); err != nil {
				t.Fatalf("Toggle(%s) error = %v", day, err)
			}
		}

		if got := set.Days(); !reflect.DeepEqual(got, before) {
			t.Fatalf("toggle twice changed the set: got %v, want %v", got, before)
		}
	})
}

func TestEmptySetStreaksAreZero(t *testing.T) {
	set := NewDateSet()
	if got := CurrentStreak(set, propToday); got != 0 {
		t.Errorf("CurrentStreak(empty) = %d, want 0", got)
	}
	if got := LongestStreak(set); got != 0 {
		t.Errorf("LongestStreak(empty) = %d, want 0", got)
	}
}
