package constants

// DayStatus classifies a calendar day by how many active habits were
// completed on it.
type DayStatus string

// SessionState identifies the active TUI screen.
type SessionState int

const (
	StateCalendar SessionState = iota
	StateDayDetail
	StateAddHabit
)

const (
	AppName            = "habitctl"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitctl/habitctl.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date-key format used throughout the
	// application (YYYY-MM-DD).
	DateFormat = "2006-01-02"

	// MonthFormat identifies a calendar month (YYYY-MM).
	MonthFormat = "2006-01"

	// DefaultEmoji is assigned to habits created without a display glyph.
	DefaultEmoji = "✅"

	// WeekPreviewDays is the window of the `week` completion grid.
	WeekPreviewDays = 7

	// Day statuses
	StatusNone     DayStatus = "none"
	StatusPartial  DayStatus = "partial"
	StatusComplete DayStatus = "complete"
	StatusMissed   DayStatus = "missed"
)
