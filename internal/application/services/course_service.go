package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
)

// CourseService handles course-related operations
type CourseService struct {
	courseRepo ports.CourseRepository
	validate   *validator.Validate
	logger     *logger.Logger
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo ports.CourseRepository, logger *logger.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		validate:   validator.New(),
		logger:     logger,
	}
}

// List returns every stored course, degrading to a partial collection on
// read failure.
func (s *CourseService) List() []entities.Course {
	courses, err := s.courseRepo.Load()
	if err != nil {
		s.logger.WithError(err).Warnw("Course load degraded", "loaded", len(courses))
	}
	return courses
}

// CreateCourse creates a new course with a fresh id and persists it
func (s *CourseService) CreateCourse(req ports.CreateCourseRequest) (*entities.Course, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid course: %w", err)
	}

	course := entities.Course{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Instructor: req.Instructor,
		Location:   req.Location,
		Schedule:   req.Schedule,
	}

	courses, err := s.courseRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	courses = append(courses, course)
	if err := s.courseRepo.Save(courses); err != nil {
		return nil, fmt.Errorf("save courses: %w", err)
	}

	s.logger.Infow("Course created", "course_id", course.ID, "name", course.Name)
	return &course, nil
}

// DeleteCourse removes the matching course by omitting it from the saved
// collection.
func (s *CourseService) DeleteCourse(id string) error {
	courses, err := s.courseRepo.Load()
	if err != nil {
		return fmt.Errorf("load courses: %w", err)
	}

	kept := courses[:0]
	for _, c := range courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(courses) {
		return entities.ErrCourseNotFound
	}

	if err := s.courseRepo.Save(kept); err != nil {
		return fmt.Errorf("save courses: %w", err)
	}

	s.logger.Infow("Course deleted", "course_id", id)
	return nil
}

// ReplaceAll persists a caller-assembled course collection wholesale.
func (s *CourseService) ReplaceAll(courses []entities.Course) error {
	if err := s.courseRepo.Save(courses); err != nil {
		return fmt.Errorf("save courses: %w", err)
	}
	return nil
}
