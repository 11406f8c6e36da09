package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
)

// dueWindowDays is the half-width of the dashboard due window.
const dueWindowDays = 14

// TaskService handles task-related operations
type TaskService struct {
	taskRepo     ports.TaskRepository
	settingsRepo ports.SettingsRepository
	calendar     ports.CalendarService
	validate     *validator.Validate
	logger       *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, settingsRepo ports.SettingsRepository, calendar ports.CalendarService, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		settingsRepo: settingsRepo,
		calendar:     calendar,
		validate:     validator.New(),
		logger:       logger,
	}
}

// List returns every stored task. A read failure degrades to whatever was
// loaded before the failure, so callers always get a usable collection.
func (s *TaskService) List() []entities.Task {
	tasks, err := s.taskRepo.Load()
	if err != nil {
		s.logger.WithError(err).Warnw("Task load degraded", "loaded", len(tasks))
	}
	return tasks
}

// Upcoming returns the tasks due within two weeks of today, either side,
// sorted ascending by due date.
func (s *TaskService) Upcoming(today time.Time) []entities.Task {
	return SortByDueDate(FilterDueWindow(s.List(), today))
}

// CreateTask creates a new task with a fresh id and persists it
func (s *TaskService) CreateTask(req ports.CreateTaskRequest) (*entities.Task, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	task := entities.Task{
		ID:        uuid.NewString(),
		Title:     req.Title,
		DueDate:   req.DueDate,
		ClassName: req.ClassName,
		Notes:     req.Notes,
		Status:    req.Status,
		Priority:  req.Priority,
	}
	if task.Status == "" {
		task.Status = entities.StatusPending
	}
	if task.Priority == "" {
		task.Priority = entities.PriorityMedium
	}

	if eventID, ok := s.createCalendarEvent(task); ok {
		task.ExternalEventID = eventID
	}

	tasks, err := s.taskRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	tasks = append(tasks, task)
	if err := s.taskRepo.Save(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	s.logger.Infow("Task created", "task_id", task.ID, "title", task.Title)
	return &task, nil
}

// UpdateTask replaces fields of the stored task matching req.ID. Nil fields
// are left as stored.
func (s *TaskService) UpdateTask(req ports.UpdateTaskRequest) (*entities.Task, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid task update: %w", err)
	}

	tasks, err := s.taskRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	idx := indexByID(tasks, req.ID)
	if idx < 0 {
		return nil, entities.ErrTaskNotFound
	}

	task := &tasks[idx]
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.ClassName != nil {
		task.ClassName = *req.ClassName
	}
	if req.Notes != nil {
		task.Notes = *req.Notes
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}

	s.updateCalendarEvent(task)

	if err := s.taskRepo.Save(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	s.logger.Infow("Task updated", "task_id", task.ID)
	out := *task
	return &out, nil
}

// ToggleStatus advances the matching task one step around the status cycle
// and persists the collection. Returns the new status.
func (s *TaskService) ToggleStatus(id string) (entities.Status, error) {
	tasks, err := s.taskRepo.Load()
	if err != nil {
		return "", fmt.Errorf("load tasks: %w", err)
	}

	idx := indexByID(tasks, id)
	if idx < 0 {
		return "", entities.ErrTaskNotFound
	}

	tasks[idx].Status = tasks[idx].Status.Next()
	if err := s.taskRepo.Save(tasks); err != nil {
		return "", fmt.Errorf("save tasks: %w", err)
	}

	return tasks[idx].Status, nil
}

// DeleteTask removes the matching task by omitting it from the saved
// collection.
func (s *TaskService) DeleteTask(id string) error {
	tasks, err := s.taskRepo.Load()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	idx := indexByID(tasks, id)
	if idx < 0 {
		return entities.ErrTaskNotFound
	}

	if eventID := tasks[idx].ExternalEventID; eventID != "" {
		if s.calendarEnabled() && !s.calendar.DeleteEvent(eventID) {
			s.logger.Warnw("Calendar event not removed", "task_id", id, "event_id", eventID)
		}
	}

	tasks = append(tasks[:idx], tasks[idx+1:]...)
	if err := s.taskRepo.Save(tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	s.logger.Infow("Task deleted", "task_id", id)
	return nil
}

func (s *TaskService) calendarEnabled() bool {
	if s.calendar == nil {
		return false
	}
	settings, err := s.settingsRepo.Load()
	if err != nil {
		s.logger.WithError(err).Warnw("Settings load degraded")
	}
	return settings.ExternalCalendarEnabled && s.calendar.IsConnected()
}

func (s *TaskService) createCalendarEvent(task entities.Task) (string, bool) {
	if !s.calendarEnabled() {
		return "", false
	}
	return s.calendar.CreateEvent(task)
}

func (s *TaskService) updateCalendarEvent(task *entities.Task) {
	if !s.calendarEnabled() {
		return
	}
	if task.ExternalEventID == "" {
		if eventID, ok := s.calendar.CreateEvent(*task); ok {
			task.ExternalEventID = eventID
		}
		return
	}
	if !s.calendar.UpdateEvent(task.ExternalEventID, *task) {
		s.logger.Warnw("Calendar event not updated",
			"task_id", task.ID, "event_id", task.ExternalEventID)
	}
}

func indexByID(tasks []entities.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// FilterDueWindow selects the tasks whose due date lies in the closed
// interval [today-2w, today+2w]. Tasks without a due date are excluded.
func FilterDueWindow(tasks []entities.Task, today time.Time) []entities.Task {
	window := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DueDate.IsZero() {
			continue
		}
		days := t.DaysUntilDue(today)
		if days >= -dueWindowDays && days <= dueWindowDays {
			window = append(window, t)
		}
	}
	return window
}

// SortByDueDate returns a copy sorted ascending by due date. Tasks without a
// due date sort after every dated task; ties keep input order.
func SortByDueDate(tasks []entities.Task) []entities.Task {
	sorted := make([]entities.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].DueDate, sorted[j].DueDate
		switch {
		case a.IsZero():
			return false
		case b.IsZero():
			return true
		default:
			return a.Before(b)
		}
	})
	return sorted
}
