package database_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"todo/internal/config"
	"todo/internal/database"
	"todo/internal/logging"
	"todo/internal/model"
	"todo/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate_SQLite(t *testing.T) {
	// Arrange
	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "nested", "todo.db"),
	}
	logger := logging.Discard()

	// Act
	db, err := database.Open(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	require.NoError(t, database.Migrate(cfg, db, logger))
	// a second run is a no-op
	require.NoError(t, database.Migrate(cfg, db, logger))

	// Assert
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	project := &model.Project{Name: "Launch", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repository.NewProjectRepository(db).Create(ctx, project))

	tasks := repository.NewTaskRepository(db)
	task := &model.Task{ID: uuid.New(), ProjectID: project.ID, Title: "Write spec", Status: "todo", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, tasks.Create(ctx, task))

	got, err := tasks.GetByID(ctx, task.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Write spec", got.Title)
	assert.True(t, db.Migrator().HasIndex(&model.Task{}, "Deadline"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(&config.Config{DBDriver: "oracle"}, logging.Discard())

	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
