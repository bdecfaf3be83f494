package models

import "fmt"

// CompletionFilter selects habits by whether they were completed today.
type CompletionFilter string

// StatusFilter selects habits by archive status.
type StatusFilter string

// SortField chooses the total order applied after filtering.
type SortField string

// SortOrder is the direction of the chosen sort.
type SortOrder string

const (
	CompletionAll     CompletionFilter = "all"
	CompletionDone    CompletionFilter = "completed"
	CompletionNotDone CompletionFilter = "not-completed"

	StatusActive   StatusFilter = "active"
	StatusArchived StatusFilter = "archived"
	StatusAll      StatusFilter = "all"

	SortByName    SortField = "name"
	SortByStreak  SortField = "streak"
	SortByCreated SortField = "created"

	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"

	// CategoryAll bypasses the category/tag filter.
	CategoryAll = "all"
)

// FilterState is the full filter/sort configuration for a habit view. It
// is pure configuration with no identity beyond its field values.
type FilterState struct {
	Completion CompletionFilter `json:"completion"`
	Category   string           `json:"category"`
	Status     StatusFilter     `json:"status"`
	SortBy     SortField        `json:"sort_by"`
	SortOrder  SortOrder        `json:"sort_order"`
}

// DefaultFilterState returns the view configuration the dashboard opens
// with: every predicate passing except archived habits, sorted by name.
func DefaultFilterState() FilterState {
	return FilterState{
		Completion: CompletionAll,
		Category:   CategoryAll,
		Status:     StatusActive,
		SortBy:     SortByName,
		SortOrder:  OrderAsc,
	}
}

// DefaultOrder returns the conventional direction for a sort field:
// names ascend, streaks and creation dates show highest/newest first.
func (f SortField) DefaultOrder() SortOrder {
	if f == SortByName {
		return OrderAsc
	}
	return OrderDesc
}

// Validate rejects unrecognized enum values so invalid combinations never
// reach the filter pipeline.
func (f FilterState) Validate() error {
	switch f.Completion {
	case CompletionAll, CompletionDone, CompletionNotDone:
	default:
		return fmt.Errorf("invalid completion filter %q", f.Completion)
	}
	switch f.Status {
	case StatusActive, StatusArchived, StatusAll:
	default:
		return fmt.Errorf("invalid status filter %q", f.Status)
	}
	switch f.SortBy {
	case SortByName, SortByStreak, SortByCreated:
	default:
		return fmt.Errorf("invalid sort field %q", f.SortBy)
	}
	switch f.SortOrder {
	case OrderAsc, OrderDesc:
	default:
		return fmt.Errorf("invalid sort order %q", f.SortOrder)
	}
	if f.Category == "" {
		return fmt.Errorf("category filter cannot be empty (use %q)", CategoryAll)
	}
	return nil
}
