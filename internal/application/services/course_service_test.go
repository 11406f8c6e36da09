package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktorch/core/internal/adapters/repository"
	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
)

func newCourseService(t *testing.T) *CourseService {
	t.Helper()
	log := logger.NewNop()
	repo := repository.NewCourseRepository(filepath.Join(t.TempDir(), "classes.csv"), log)
	return NewCourseService(repo, log)
}

func TestCreateCoursePersists(t *testing.T) {
	svc := newCourseService(t)

	course, err := svc.CreateCourse(ports.CreateCourseRequest{
		Name:       "Hist101",
		Instructor: "Dr. Reed",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, course.ID)

	stored := svc.List()
	require.Len(t, stored, 1)
	assert.Equal(t, *course, stored[0])
}

func TestCreateCourseRequiresName(t *testing.T) {
	svc := newCourseService(t)

	_, err := svc.CreateCourse(ports.CreateCourseRequest{Instructor: "Dr. Reed"})
	assert.Error(t, err)
	assert.Empty(t, svc.List())
}

func TestDeleteCourse(t *testing.T) {
	svc := newCourseService(t)

	course, err := svc.CreateCourse(ports.CreateCourseRequest{Name: "Hist101"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(course.ID))
	assert.ErrorIs(t, svc.DeleteCourse(course.ID), entities.ErrCourseNotFound)
	assert.Empty(t, svc.List())
}

func TestReplaceAllCourses(t *testing.T) {
	svc := newCourseService(t)

	courses := []entities.Course{
		{ID: "c1", Name: "Hist101"},
		{ID: "c2", Name: "Math201", Schedule: "TTh 14:00"},
	}
	require.NoError(t, svc.ReplaceAll(courses))
	assert.Equal(t, courses, svc.List())
}
