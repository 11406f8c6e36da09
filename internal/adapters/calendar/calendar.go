package calendar

import (
	"os"

	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
)

// Service is the external-calendar collaborator. The actual sync protocol is
// out of scope; this implementation only honors the on/off contract: it is
// "connected" when a credentials file exists next to a non-empty token
// directory, and every event operation reports failure until a real client
// replaces it.
type Service struct {
	credentialsPath string
	tokensDir       string
	log             *logger.Logger
}

// New creates a calendar service rooted at the given credential paths
func New(credentialsPath, tokensDir string, log *logger.Logger) ports.CalendarService {
	return &Service{
		credentialsPath: credentialsPath,
		tokensDir:       tokensDir,
		log:             log.WithComponent("calendar"),
	}
}

func (s *Service) IsConnected() bool {
	if _, err := os.Stat(s.credentialsPath); err != nil {
		return false
	}
	entries, err := os.ReadDir(s.tokensDir)
	if err != nil {
		return false
	}
	return len(entries) > 0
}

func (s *Service) CreateEvent(task entities.Task) (string, bool) {
	if !s.IsConnected() {
		return "", false
	}
	s.log.Infow("Calendar sync requires API credentials setup", "task_id", task.ID)
	return "", false
}

func (s *Service) UpdateEvent(eventID string, task entities.Task) bool {
	if !s.IsConnected() {
		return false
	}
	s.log.Infow("Calendar sync requires API credentials setup",
		"task_id", task.ID, "event_id", eventID)
	return false
}

func (s *Service) DeleteEvent(eventID string) bool {
	if !s.IsConnected() {
		return false
	}
	s.log.Infow("Calendar sync requires API credentials setup", "event_id", eventID)
	return false
}

// Disconnect removes any stored tokens.
func (s *Service) Disconnect() error {
	if err := os.RemoveAll(s.tokensDir); err != nil {
		s.log.WithError(err).Errorw("Failed to remove token directory", "dir", s.tokensDir)
		return err
	}
	return nil
}
