package services

import (
	"strings"

	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
)

// AuthService handles signup and login against the user store. Usernames are
// matched case-insensitively; passwords are compared exactly, in cleartext,
// matching the persisted format. Business outcomes are booleans and nils,
// never errors.
type AuthService struct {
	userRepo ports.UserRepository
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo ports.UserRepository, logger *logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate returns the first user whose username matches
// case-insensitively and whose password matches exactly, or nil when there is
// no such user.
func (s *AuthService) Authenticate(username, password string) *entities.User {
	users, err := s.userRepo.Load()
	if err != nil {
		s.logger.WithError(err).Warnw("User load degraded", "loaded", len(users))
	}

	for i := range users {
		if strings.EqualFold(users[i].Username, username) && users[i].CheckPassword(password) {
			user := users[i]
			return &user
		}
	}
	return nil
}

// AddUser appends a new account and persists the collection. Returns false
// without mutating anything when the username already exists (any casing) or
// when the store cannot be read or written.
func (s *AuthService) AddUser(username, password string) bool {
	users, err := s.userRepo.Load()
	if err != nil {
		// A partial read here could make the save below drop accounts.
		s.logger.WithError(err).Errorw("Signup refused, user store unreadable")
		return false
	}

	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return false
		}
	}

	users = append(users, entities.User{Username: username, Password: password})
	if err := s.userRepo.Save(users); err != nil {
		s.logger.WithError(err).Errorw("Signup failed, user store not written")
		return false
	}

	s.logger.Infow("User registered", "username", username)
	return true
}

// UsernameExists reports whether any stored account has the given username,
// compared case-insensitively.
func (s *AuthService) UsernameExists(username string) bool {
	users, err := s.userRepo.Load()
	if err != nil {
		s.logger.WithError(err).Warnw("User load degraded", "loaded", len(users))
	}

	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return true
		}
	}
	return false
}
