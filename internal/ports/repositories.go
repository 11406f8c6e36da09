package ports

import (
	"github.com/tasktorch/core/internal/domain/entities"
)

// TaskRepository defines the interface for task persistence. Load and Save
// round-trip the full collection; the repository keeps no state between calls
// and retains no reference to returned slices.
type TaskRepository interface {
	Load() ([]entities.Task, error)
	Save(tasks []entities.Task) error
}

// CourseRepository defines the interface for course persistence
type CourseRepository interface {
	Load() ([]entities.Course, error)
	Save(courses []entities.Course) error
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Load() ([]entities.User, error)
	Save(users []entities.User) error
}

// SettingsRepository defines the interface for the settings singleton.
// Load never fails outright: malformed values fall back to their defaults
// and a missing file yields entities.DefaultSettings().
type SettingsRepository interface {
	Load() (entities.Settings, error)
	Save(settings entities.Settings) error
}
