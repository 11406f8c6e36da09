package commands

import (
	"fmt"

	"github.com/tasktorch/core/internal/adapters/calendar"
	"github.com/tasktorch/core/internal/adapters/repository"
	"github.com/tasktorch/core/internal/application/services"
	"github.com/tasktorch/core/internal/infrastructure/config"
	"github.com/tasktorch/core/internal/infrastructure/logger"
	"github.com/tasktorch/core/internal/ports"
	"github.com/tasktorch/core/internal/session"
)

// app wires the stores, services and session for one command invocation.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	tasks    *services.TaskService
	courses  *services.CourseService
	settings *services.SettingsService
	auth     *services.AuthService
	cal      *calendarHandle
	sess     *session.Session
}

// calendarHandle keeps the calendar collaborator alongside its paths so the
// status command can report them.
type calendarHandle struct {
	svc             ports.CalendarService
	credentialsPath string
	tokensDir       string
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cal := calendar.New(cfg.Data.CredentialsFile(), cfg.Data.TokensDir(), log)

	taskRepo := repository.NewTaskRepository(cfg.Data.TasksFile(), log)
	courseRepo := repository.NewCourseRepository(cfg.Data.CoursesFile(), log)
	userRepo := repository.NewUserRepository(cfg.Data.UsersFile(), log)
	settingsRepo := repository.NewSettingsRepository(cfg.Data.SettingsFile(), log)

	settingsSvc := services.NewSettingsService(settingsRepo, log)

	return &app{
		cfg:      cfg,
		log:      log,
		tasks:    services.NewTaskService(taskRepo, settingsRepo, cal, log),
		courses:  services.NewCourseService(courseRepo, log),
		settings: settingsSvc,
		auth:     services.NewAuthService(userRepo, log),
		cal: &calendarHandle{
			svc:             cal,
			credentialsPath: cfg.Data.CredentialsFile(),
			tokensDir:       cfg.Data.TokensDir(),
		},
		sess: session.New(settingsSvc.Get().Theme),
	}, nil
}

func (a *app) close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}
