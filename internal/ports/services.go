package ports

import (
	"time"

	"github.com/tasktorch/core/internal/domain/entities"
)

// CreateTaskRequest carries the fields for a new task. The id is generated by
// the service; the external event id starts empty.
type CreateTaskRequest struct {
	Title     string    `validate:"required"`
	DueDate   time.Time `validate:"required"`
	ClassName string
	Notes     string
	Status    entities.Status   `validate:"omitempty,oneof=pending in_progress completed"`
	Priority  entities.Priority `validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest carries a full replacement for an existing task. Nil
// pointer fields leave the stored value unchanged.
type UpdateTaskRequest struct {
	ID        string `validate:"required"`
	Title     *string
	DueDate   *time.Time
	ClassName *string
	Notes     *string
	Status    *entities.Status
	Priority  *entities.Priority
}

// CreateCourseRequest carries the fields for a new course.
type CreateCourseRequest struct {
	Name       string `validate:"required"`
	Instructor string
	Location   string
	Schedule   string
}

// UpdateSettingsRequest carries a settings replacement. The reminder window
// range is enforced here, at the caller boundary, not by the Settings model.
type UpdateSettingsRequest struct {
	Theme                   entities.Theme `validate:"oneof=light dark"`
	DailyReminder           bool
	RemindDaysBeforeDue     int `validate:"min=1,max=30"`
	ExternalCalendarEnabled bool
}

// CalendarService is the external-calendar collaborator. The real protocol is
// out of scope; implementations only honor the on/off contract. CreateEvent
// returns ("", false) when no event could be created.
type CalendarService interface {
	IsConnected() bool
	CreateEvent(task entities.Task) (string, bool)
	UpdateEvent(eventID string, task entities.Task) bool
	DeleteEvent(eventID string) bool
	Disconnect() error
}
