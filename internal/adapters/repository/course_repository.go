package repository

import (
	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
)

const courseHeader = "courseId,name,instructor,location,schedule"

const courseMinFields = 2

// CourseRepositoryImpl implements the CourseRepository interface
type CourseRepositoryImpl struct {
	path string
	log  *logger.Logger
}

// NewCourseRepository creates a new course repository bound to the given file
func NewCourseRepository(path string, log *logger.Logger) ports.CourseRepository {
	return &CourseRepositoryImpl{path: path, log: log.WithComponent("course_store")}
}

func (r *CourseRepositoryImpl) Load() ([]entities.Course, error) {
	lines, err := loadLines(r.path)

	courses := make([]entities.Course, 0, len(lines))
	for _, line := range lines {
		fields := decodeLine(line)
		if len(fields) < courseMinFields {
			continue
		}

		course := entities.Course{
			ID:   fields[0],
			Name: fields[1],
		}
		if len(fields) > 2 {
			course.Instructor = fields[2]
		}
		if len(fields) > 3 {
			course.Location = fields[3]
		}
		if len(fields) > 4 {
			course.Schedule = fields[4]
		}
		courses = append(courses, course)
	}

	r.log.LogFileOp("load", r.path, len(courses), err)
	return courses, err
}

func (r *CourseRepositoryImpl) Save(courses []entities.Course) error {
	lines := make([]string, 0, len(courses)+1)
	lines = append(lines, courseHeader)
	for _, c := range courses {
		lines = append(lines, encodeLine([]string{
			c.ID,
			c.Name,
			c.Instructor,
			c.Location,
			c.Schedule,
		}))
	}

	err := writeLinesAtomic(r.path, lines)
	r.log.LogFileOp("save", r.path, len(courses), err)
	return err
}
