package repository

import (
	"time"

	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
)

const taskHeader = "taskId,title,dueDate,className,notes,status,priority,externalEventId"

// taskMinFields is the decoded field count below which a row is skipped.
const taskMinFields = 6

// TaskRepositoryImpl implements the TaskRepository interface on a flat CSV
// file that it rewrites in full on every save.
type TaskRepositoryImpl struct {
	path string
	log  *logger.Logger
}

// NewTaskRepository creates a new task repository bound to the given file
func NewTaskRepository(path string, log *logger.Logger) ports.TaskRepository {
	return &TaskRepositoryImpl{path: path, log: log.WithComponent("task_store")}
}

func (r *TaskRepositoryImpl) Load() ([]entities.Task, error) {
	lines, err := loadLines(r.path)

	tasks := make([]entities.Task, 0, len(lines))
	for _, line := range lines {
		fields := decodeLine(line)
		if len(fields) < taskMinFields {
			continue
		}

		due, perr := time.Parse(dateLayout, fields[2])
		if perr != nil {
			// Bad enum tokens fall back to defaults, so a bad date gets the
			// same skip-and-continue treatment instead of aborting the load.
			r.log.Warnw("Skipping task with malformed due date",
				"task_id", fields[0], "due_date", fields[2])
			continue
		}

		task := entities.Task{
			ID:        fields[0],
			Title:     fields[1],
			DueDate:   due,
			ClassName: fields[3],
			Notes:     fields[4],
			Status:    entities.StatusFromString(fields[5]),
			Priority:  entities.PriorityMedium,
		}
		if len(fields) > 6 {
			task.Priority = entities.PriorityFromString(fields[6])
		}
		if len(fields) > 7 {
			task.ExternalEventID = fields[7]
		}
		tasks = append(tasks, task)
	}

	r.log.LogFileOp("load", r.path, len(tasks), err)
	return tasks, err
}

func (r *TaskRepositoryImpl) Save(tasks []entities.Task) error {
	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, taskHeader)
	for _, t := range tasks {
		lines = append(lines, encodeLine([]string{
			t.ID,
			t.Title,
			t.DueDate.Format(dateLayout),
			t.ClassName,
			t.Notes,
			string(t.Status),
			string(t.Priority),
			t.ExternalEventID,
		}))
	}

	err := writeLinesAtomic(r.path, lines)
	r.log.LogFileOp("save", r.path, len(tasks), err)
	return err
}
