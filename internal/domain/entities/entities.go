package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Common errors
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrCourseNotFound = errors.New("course not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("username already exists")
	ErrEmptyTitle     = errors.New("task title must not be empty")
)

// Enums and types
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// StatusFromString maps a persisted token back to a Status. Unknown tokens
// fall back to StatusPending.
func StatusFromString(value string) Status {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(StatusInProgress):
		return StatusInProgress
	case string(StatusCompleted):
		return StatusCompleted
	default:
		return StatusPending
	}
}

// PriorityFromString maps a persisted token back to a Priority. Unknown tokens
// fall back to PriorityMedium.
func PriorityFromString(value string) Priority {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(PriorityLow):
		return PriorityLow
	case string(PriorityHigh):
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// ThemeFromString maps a persisted token back to a Theme. Unknown tokens fall
// back to ThemeLight.
func ThemeFromString(value string) Theme {
	if strings.EqualFold(strings.TrimSpace(value), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// Next returns the status reached by one quick-toggle step:
// pending -> in_progress -> completed -> pending.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	case StatusCompleted:
		return StatusPending
	default:
		return StatusPending
	}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func (th Theme) IsValid() bool {
	switch th {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// Task represents a homework or assignment entry. The ID is caller-generated,
// opaque, and stable for the task's lifetime. ExternalEventID is empty until
// the task has been mirrored to the external calendar.
type Task struct {
	ID              string
	Title           string
	DueDate         time.Time
	ClassName       string
	Notes           string
	Status          Status
	Priority        Priority
	ExternalEventID string
}

// Course represents a class a task can belong to. All fields other than the
// id are free text and default to empty strings.
type Course struct {
	ID         string
	Name       string
	Instructor string
	Location   string
	Schedule   string
}

// User is a stored account. The password is kept and compared in cleartext;
// that matches the persisted format and is a documented weakness of it.
type User struct {
	Username string
	Password string
}

// Settings holds the per-installation preferences. Zero values are not the
// defaults; use DefaultSettings.
type Settings struct {
	Theme                   Theme
	DailyReminder           bool
	RemindDaysBeforeDue     int
	ExternalCalendarEnabled bool
}

// DefaultSettings returns the settings applied when no settings file exists
// or when individual stored values are malformed.
func DefaultSettings() Settings {
	return Settings{
		Theme:                   ThemeLight,
		DailyReminder:           false,
		RemindDaysBeforeDue:     1,
		ExternalCalendarEnabled: false,
	}
}

// MarkCompleted sets the task status to completed.
func (t *Task) MarkCompleted() {
	t.Status = StatusCompleted
}

// DaysUntilDue returns the whole-day delta between today and the due date,
// negative when the task is overdue. Both sides are truncated to calendar
// days before differencing, so time-of-day never shifts the result.
func (t Task) DaysUntilDue(today time.Time) int {
	due := truncateToDay(t.DueDate)
	now := truncateToDay(today)
	return int(due.Sub(now).Hours() / 24)
}

// DueOffsetText renders a day delta for display: "N days overdue",
// "Due today", or "N days remaining".
func DueOffsetText(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "Due today"
	default:
		return fmt.Sprintf("%d days remaining", days)
	}
}

// ShortOffsetText is the compact phrasing used by list rows: "N days overdue",
// "Due today", or "N days".
func ShortOffsetText(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "Due today"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// Summary renders the one-line task summary:
// "{title} ({className}) - {offset} - {PRIORITY}".
func (t Task) Summary(today time.Time) string {
	offset := DueOffsetText(t.DaysUntilDue(today))
	return fmt.Sprintf("%s (%s) - %s - %s", t.Title, t.ClassName, offset, strings.ToUpper(string(t.Priority)))
}

// IsOverdue reports whether the due date has passed and the task is not done.
func (t Task) IsOverdue(today time.Time) bool {
	return t.DaysUntilDue(today) < 0 && t.Status != StatusCompleted
}

func truncateToDay(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CheckPassword compares the candidate against the stored password exactly,
// case and whitespace included.
func (u User) CheckPassword(candidate string) bool {
	return u.Password == candidate
}
