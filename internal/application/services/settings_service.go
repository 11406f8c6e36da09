package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
)

// SettingsService handles the settings singleton. The Settings model itself
// accepts any integer for the reminder window; the 1-30 range is enforced
// here, at the edit boundary.
type SettingsService struct {
	settingsRepo ports.SettingsRepository
	validate     *validator.Validate
	logger       *logger.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo ports.SettingsRepository, logger *logger.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		validate:     validator.New(),
		logger:       logger,
	}
}

// Get returns the stored settings, falling back to defaults when the store
// cannot be read.
func (s *SettingsService) Get() entities.Settings {
	settings, err := s.settingsRepo.Load()
	if err != nil {
		s.logger.WithError(err).Warnw("Settings load degraded, using defaults")
	}
	return settings
}

// Update validates and persists a settings replacement.
func (s *SettingsService) Update(req ports.UpdateSettingsRequest) (entities.Settings, error) {
	if err := s.validate.Struct(req); err != nil {
		return entities.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	settings := entities.Settings{
		Theme:                   req.Theme,
		DailyReminder:           req.DailyReminder,
		RemindDaysBeforeDue:     req.RemindDaysBeforeDue,
		ExternalCalendarEnabled: req.ExternalCalendarEnabled,
	}

	if err := s.settingsRepo.Save(settings); err != nil {
		return entities.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	s.logger.Infow("Settings updated",
		"theme", settings.Theme,
		"daily_reminder", settings.DailyReminder,
		"remind_days", settings.RemindDaysBeforeDue,
		"external_calendar", settings.ExternalCalendarEnabled,
	)
	return settings, nil
}
