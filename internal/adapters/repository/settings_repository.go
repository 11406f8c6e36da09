package repository

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tasktorch/core/internal/domain/entities"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
)

// Settings keys as written to settings.txt.
const (
	keyTheme            = "theme"
	keyDailyReminder    = "dailyReminder"
	keyRemindDays       = "remindDaysBeforeDue"
	keyExternalCalendar = "externalCalendarEnabled"
)

// SettingsRepositoryImpl implements the SettingsRepository interface on a
// key=value text file. Unlike the record stores there is no header and no
// delimiter handling: one setting per line, unknown keys ignored, malformed
// values replaced by the field's default.
type SettingsRepositoryImpl struct {
	path string
	log  *logger.Logger
}

// NewSettingsRepository creates a new settings repository bound to the given file
func NewSettingsRepository(path string, log *logger.Logger) ports.SettingsRepository {
	return &SettingsRepositoryImpl{path: path, log: log.WithComponent("settings_store")}
}

func (r *SettingsRepositoryImpl) Load() (entities.Settings, error) {
	settings := entities.DefaultSettings()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return settings, fmt.Errorf("create data directory: %w", err)
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		r.log.LogFileOp("load", r.path, 0, err)
		return settings, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case keyTheme:
			settings.Theme = entities.ThemeFromString(value)
		case keyDailyReminder:
			settings.DailyReminder = parseBoolDefault(value, false)
		case keyRemindDays:
			if n, perr := strconv.Atoi(value); perr == nil {
				settings.RemindDaysBeforeDue = n
			} else {
				settings.RemindDaysBeforeDue = entities.DefaultSettings().RemindDaysBeforeDue
			}
		case keyExternalCalendar:
			settings.ExternalCalendarEnabled = parseBoolDefault(value, false)
		}
	}
	if err := scanner.Err(); err != nil {
		r.log.LogFileOp("load", r.path, 0, err)
		return settings, fmt.Errorf("read %s: %w", r.path, err)
	}

	r.log.LogFileOp("load", r.path, 1, nil)
	return settings, nil
}

func (r *SettingsRepositoryImpl) Save(settings entities.Settings) error {
	lines := []string{
		keyTheme + "=" + string(settings.Theme),
		keyDailyReminder + "=" + strconv.FormatBool(settings.DailyReminder),
		keyRemindDays + "=" + strconv.Itoa(settings.RemindDaysBeforeDue),
		keyExternalCalendar + "=" + strconv.FormatBool(settings.ExternalCalendarEnabled),
	}

	err := writeLinesAtomic(r.path, lines)
	r.log.LogFileOp("save", r.path, 1, err)
	return err
}

func parseBoolDefault(value string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return fallback
	}
	return b
}
