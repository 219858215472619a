package cli

import (
	"fmt"
	"time"

	"todo/internal/config"
	"todo/internal/database"
	"todo/internal/job"
	"todo/internal/logging"
	"todo/internal/repository"
	"todo/internal/repository/memory"
	"todo/internal/service"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// App bundles what the commands operate on. DB is nil for the in-memory
// store.
type App struct {
	Config   *config.Config
	Logger   *log.Logger
	DB       *gorm.DB
	Projects *service.ProjectService
	Tasks    *service.TaskService
	Sweeper  *job.Sweeper
	Now      func() time.Time
}

// Connector builds the App for a single command invocation.
type Connector func(inMemory bool) (*App, error)

// Connect loads the configuration and opens the configured store. A SQLite
// schema is created on the fly; Postgres expects `todo migrate` to have run.
func Connect(inMemory bool) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	if inMemory {
		return NewMemoryApp(cfg, logger, nil), nil
	}

	db, err := database.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == config.DriverSQLite {
		if err := database.Migrate(cfg, db, logger); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("migrate sqlite schema: %w", err)
		}
	}

	projects := repository.NewProjectRepository(db)
	tasks := repository.NewTaskRepository(db)
	limits := cfg.Limits()
	return &App{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Projects: service.NewProjectService(projects, limits),
		Tasks:    service.NewTaskService(projects, tasks, limits),
		Sweeper:  job.NewSweeper(tasks, logger),
		Now:      time.Now,
	}, nil
}

// NewMemoryApp wires the services to a fresh in-memory store that lives as
// long as the returned App. A nil clock means time.Now.
func NewMemoryApp(cfg *config.Config, logger *log.Logger, now func() time.Time) *App {
	if now == nil {
		now = time.Now
	}
	store := memory.New()
	limits := cfg.Limits()
	return &App{
		Config:   cfg,
		Logger:   logger,
		Projects: service.NewProjectService(store.Projects(), limits, service.WithClock(now)),
		Tasks:    service.NewTaskService(store.Projects(), store.Tasks(), limits, service.WithClock(now)),
		Sweeper:  job.NewSweeper(store.Tasks(), logger, job.WithClock(now)),
		Now:      now,
	}
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return database.Close(a.DB)
}
