package repository

import (
	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
)

const userHeader = "username,password"

const userMinFields = 2

// UserRepositoryImpl implements the UserRepository interface. Passwords are
// persisted in cleartext; the store round-trips them byte for byte so that
// exact-match authentication keeps working (no trimming, no normalization).
type UserRepositoryImpl struct {
	path string
	log  *logger.Logger
}

// NewUserRepository creates a new user repository bound to the given file
func NewUserRepository(path string, log *logger.Logger) ports.UserRepository {
	return &UserRepositoryImpl{path: path, log: log.WithComponent("user_store")}
}

func (r *UserRepositoryImpl) Load() ([]entities.User, error) {
	lines, err := loadLines(r.path)

	users := make([]entities.User, 0, len(lines))
	for _, line := range lines {
		fields := decodeLine(line)
		if len(fields) < userMinFields {
			continue
		}
		if fields[0] == "" || fields[1] == "" {
			continue
		}
		users = append(users, entities.User{
			Username: fields[0],
			Password: fields[1],
		})
	}

	r.log.LogFileOp("load", r.path, len(users), err)
	return users, err
}

func (r *UserRepositoryImpl) Save(users []entities.User) error {
	lines := make([]string, 0, len(users)+1)
	lines = append(lines, userHeader)
	for _, u := range users {
		lines = append(lines, encodeLine([]string{u.Username, u.Password}))
	}

	err := writeLinesAtomic(r.path, lines)
	r.log.LogFileOp("save", r.path, len(users), err)
	return err
}
