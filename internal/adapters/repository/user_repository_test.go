package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
)

func newUserStore(t *testing.T) (*UserRepositoryImpl, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "users.csv")
	repo := NewUserRepository(path, logger.NewNop()).(*UserRepositoryImpl)
	return repo, path
}

func TestUserLoadMissingFile(t *testing.T) {
	repo, _ := newUserStore(t)

	users, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserSaveLoadRoundTrip(t *testing.T) {
	repo, _ := newUserStore(t)

	in := []entities.User{
		{Username: "alice", Password: "pass "},
		{Username: "bob,jr", Password: `p"w`},
	}
	require.NoError(t, repo.Save(in))

	out, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUserPasswordsKeptVerbatim(t *testing.T) {
	repo, _ := newUserStore(t)

	require.NoError(t, repo.Save([]entities.User{{Username: "alice", Password: "pass "}}))

	out, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "pass ", out[0].Password)
	assert.False(t, out[0].CheckPassword("pass"))
}

func TestUserLoadSkipsIncompleteRows(t *testing.T) {
	repo, path := newUserStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	content := userHeader + "\n" +
		"alice,secret\n" +
		"lonely\n" +
		",nopassword\n" +
		"nousername,\n" +
		"bob,hunter2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	users, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}
