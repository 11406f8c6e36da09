package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
)

func newTaskStore(t *testing.T) (*TaskRepositoryImpl, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "tasks.csv")
	repo := NewTaskRepository(path, logger.NewNop()).(*TaskRepositoryImpl)
	return repo, path
}

func TestTaskLoadMissingFile(t *testing.T) {
	repo, path := newTaskStore(t)

	tasks, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// The directory is created on demand, the file is not.
	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestTaskSaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTaskStore(t)

	in := []entities.Task{
		{
			ID:        "t1",
			Title:     "Essay, part 2",
			DueDate:   time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			ClassName: `Hist "101"`,
			Notes:     "cite sources, see syllabus",
			Status:    entities.StatusInProgress,
			Priority:  entities.PriorityHigh,
		},
		{
			ID:              "t2",
			Title:           "Problem set",
			DueDate:         time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			ClassName:       "Math201",
			Status:          entities.StatusPending,
			Priority:        entities.PriorityMedium,
			ExternalEventID: "evt-42",
		},
	}
	require.NoError(t, repo.Save(in))

	out, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, in, out)
}

func TestTaskSaveIsIdempotent(t *testing.T) {
	repo, path := newTaskStore(t)

	in := []entities.Task{
		{
			ID:        "t1",
			Title:     "Read chapter 4",
			DueDate:   time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
			ClassName: "Bio150",
			Notes:     "pages 88-120",
			Status:    entities.StatusPending,
			Priority:  entities.PriorityLow,
		},
	}
	require.NoError(t, repo.Save(in))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.NoError(t, repo.Save(loaded))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestTaskLoadSkipsShortAndMalformedRows(t *testing.T) {
	repo, path := newTaskStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	content := taskHeader + "\n" +
		"t1,Essay,2024-06-15,Hist101,notes,pending,high,\n" +
		"short,row\n" +
		"\n" +
		"t2,Lab,not-a-date,Chem101,,pending,low,\n" +
		"t3,Quiz,2024-06-18,Chem101,,in_progress,medium,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tasks, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, "t3", tasks[1].ID)
}

func TestTaskLoadDefaultsForUnknownTokens(t *testing.T) {
	repo, path := newTaskStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	content := taskHeader + "\n" +
		"t1,Essay,2024-06-15,Hist101,,nonsense,bogus,\n" +
		"t2,Lab,2024-06-16,Chem101,,completed\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tasks, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, entities.StatusPending, tasks[0].Status)
	assert.Equal(t, entities.PriorityMedium, tasks[0].Priority)

	// Six fields is enough; priority and event id default.
	assert.Equal(t, entities.StatusCompleted, tasks[1].Status)
	assert.Equal(t, entities.PriorityMedium, tasks[1].Priority)
	assert.Empty(t, tasks[1].ExternalEventID)
}

func TestTaskHeaderIsSkippedNotValidated(t *testing.T) {
	repo, path := newTaskStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	content := "completely,wrong,header\n" +
		"t1,Essay,2024-06-15,Hist101,,pending,high,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tasks, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
}

func TestTaskSaveWritesHeaderAndOrder(t *testing.T) {
	repo, path := newTaskStore(t)

	in := []entities.Task{
		{ID: "b", Title: "B", DueDate: time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC), Status: entities.StatusPending, Priority: entities.PriorityLow},
		{ID: "a", Title: "A", DueDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), Status: entities.StatusPending, Priority: entities.PriorityLow},
	}
	require.NoError(t, repo.Save(in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := taskHeader + "\n" +
		"b,B,2024-06-02,,,pending,low,\n" +
		"a,A,2024-06-01,,,pending,low,\n"
	assert.Equal(t, want, string(data))
}
