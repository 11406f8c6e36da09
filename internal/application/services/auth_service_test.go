package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktorch/core/internal/adapters/repository"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
)

func newAuthService(t *testing.T) (*AuthService, ports.UserRepository) {
	t.Helper()
	log := logger.NewNop()
	userRepo := repository.NewUserRepository(filepath.Join(t.TempDir(), "users.csv"), log)
	return NewAuthService(userRepo, log), userRepo
}

func TestAddUserAndAuthenticate(t *testing.T) {
	svc, _ := newAuthService(t)

	require.True(t, svc.AddUser("alice", "secret"))

	user := svc.Authenticate("alice", "secret")
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	// Username matching is case-insensitive.
	assert.NotNil(t, svc.Authenticate("ALICE", "secret"))

	// Password matching is exact.
	assert.Nil(t, svc.Authenticate("alice", "Secret"))
	assert.Nil(t, svc.Authenticate("alice", "secret "))
}

func TestAddUserCaseInsensitiveCollision(t *testing.T) {
	svc, userRepo := newAuthService(t)

	require.True(t, svc.AddUser("Alice", "x"))
	assert.False(t, svc.AddUser("alice", "y"))

	users, err := userRepo.Load()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Username)
	assert.Equal(t, "x", users[0].Password)
}

func TestAuthenticateTrailingSpaceExactness(t *testing.T) {
	svc, _ := newAuthService(t)

	require.True(t, svc.AddUser("alice", "pass "))
	assert.Nil(t, svc.Authenticate("alice", "pass"))
	assert.NotNil(t, svc.Authenticate("alice", "pass "))
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)
	assert.Nil(t, svc.Authenticate("nobody", "anything"))
}

func TestUsernameExists(t *testing.T) {
	svc, _ := newAuthService(t)

	assert.False(t, svc.UsernameExists("alice"))
	require.True(t, svc.AddUser("Alice", "x"))
	assert.True(t, svc.UsernameExists("alice"))
	assert.True(t, svc.UsernameExists("ALICE"))
	assert.False(t, svc.UsernameExists("bob"))
}
