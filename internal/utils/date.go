package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/gugan-zemuria/habitctl/internal/constants"
)

// DateKey formats a time as the canonical YYYY-MM-DD date key. The local
// calendar is used everywhere; callers must not mix in UTC-derived keys.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// TodayKey returns the local calendar date as a date key.
func TodayKey() string {
	return DateKey(time.Now())
}

// ParseDateKey parses a date key at local midnight.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", key, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// NormalizeDateKey canonicalizes a raw completion date. It accepts either a
// bare YYYY-MM-DD key or an ISO-8601 timestamp, in which case the date part
// before the 'T' is taken. The result is validated as a real calendar date.
func NormalizeDateKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if i := strings.IndexByte(key, 'T'); i >= 0 {
		key = key[:i]
	}
	if _, err := time.Parse(constants.DateFormat, key); err != nil {
		return "", fmt.Errorf("unparseable completion date %q: %w", raw, err)
	}
	return key, nil
}

// DaysBack returns the n most recent calendar dates ending today, in
// ascending order. Used for the rolling week preview.
func DaysBack(n int) []string {
	return DaysBackFrom(time.Now(), n)
}

// DaysBackFrom is DaysBack anchored at an arbitrary reference day.
func DaysBackFrom(ref time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, DateKey(ref.AddDate(0, 0, -i)))
	}
	return keys
}

// PrevDayKey returns the date key of the calendar day before key.
func PrevDayKey(key string) (string, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return "", err
	}
	return DateKey(t.AddDate(0, 0, -1)), nil
}

// DaysBetween returns the number of whole calendar days from a to b
// (negative when b precedes a). Time-of-day is ignored.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

// IsAfter reports whether date key a falls strictly after b. Zero-padded
// date keys order lexicographically, so plain string comparison is exact.
func IsAfter(a, b string) bool {
	return a > b
}
