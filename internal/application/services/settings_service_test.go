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

func newSettingsService(t *testing.T) *SettingsService {
	t.Helper()
	log := logger.NewNop()
	repo := repository.NewSettingsRepository(filepath.Join(t.TempDir(), "settings.txt"), log)
	return NewSettingsService(repo, log)
}

func TestSettingsGetDefaults(t *testing.T) {
	svc := newSettingsService(t)
	assert.Equal(t, entities.DefaultSettings(), svc.Get())
}

func TestSettingsUpdateRoundTrip(t *testing.T) {
	svc := newSettingsService(t)

	updated, err := svc.Update(ports.UpdateSettingsRequest{
		Theme:                   entities.ThemeDark,
		DailyReminder:           true,
		RemindDaysBeforeDue:     14,
		ExternalCalendarEnabled: true,
	})
	require.NoError(t, err)
	assert.Equal(t, updated, svc.Get())
}

func TestSettingsUpdateEnforcesReminderRange(t *testing.T) {
	svc := newSettingsService(t)

	for _, days := range []int{0, -1, 31, 100} {
		_, err := svc.Update(ports.UpdateSettingsRequest{
			Theme:               entities.ThemeLight,
			RemindDaysBeforeDue: days,
		})
		assert.Error(t, err, "remind days %d should be rejected", days)
	}

	for _, days := range []int{1, 30} {
		_, err := svc.Update(ports.UpdateSettingsRequest{
			Theme:               entities.ThemeLight,
			RemindDaysBeforeDue: days,
		})
		assert.NoError(t, err, "remind days %d should be accepted", days)
	}
}

func TestSettingsUpdateRejectsUnknownTheme(t *testing.T) {
	svc := newSettingsService(t)

	_, err := svc.Update(ports.UpdateSettingsRequest{
		Theme:               entities.Theme("neon"),
		RemindDaysBeforeDue: 1,
	})
	assert.Error(t, err)
}
