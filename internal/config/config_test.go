package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"todo/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TODO_CONFIG_FILE", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 1000, cfg.MaxProjects)
	assert.Equal(t, 10000, cfg.MaxTasks)
	assert.Equal(t, 15*time.Minute, cfg.AutocloseInterval)
	assert.False(t, cfg.AutocloseEnabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TODO_CONFIG_FILE", "")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/todo-test.db")
	t.Setenv("MAX_NUMBER_OF_PROJECT", "3")
	t.Setenv("MAX_NUMBER_OF_TASK", "0")
	t.Setenv("AUTOCLOSE_ENABLED", "true")
	t.Setenv("AUTOCLOSE_INTERVAL", "90s")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/todo-test.db", cfg.SQLitePath)
	assert.Equal(t, 3, cfg.Limits().MaxProjects)
	assert.Equal(t, 0, cfg.Limits().MaxTasks)
	assert.True(t, cfg.AutocloseEnabled)
	assert.Equal(t, 90*time.Second, cfg.AutocloseInterval)
}

func TestLoad_TOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.toml")
	content := `
db_driver = "sqlite"
sqlite_path = "from-file.db"
max_number_of_task = 50
autoclose_interval = "1h"
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("TODO_CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "from-file.db", cfg.SQLitePath)
	assert.Equal(t, 50, cfg.MaxTasks)
	assert.Equal(t, 1000, cfg.MaxProjects)
	assert.Equal(t, time.Hour, cfg.AutocloseInterval)
	// the environment wins over the file
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"driver", "DB_DRIVER", "mysql"},
		{"limit", "MAX_NUMBER_OF_PROJECT", "many"},
		{"bool", "AUTOCLOSE_ENABLED", "sometimes"},
		{"interval", "AUTOCLOSE_INTERVAL", "soon"},
		{"non-positive interval", "AUTOCLOSE_INTERVAL", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TODO_CONFIG_FILE", "")
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()

			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("TODO_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.toml"))

	_, err := config.Load()

	assert.Error(t, err)
}

func TestPostgresURL(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "todo",
		DBPassword: "p@ss word",
		DBName:     "todo_db",
		DBSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://todo:p%40ss%20word@db:5432/todo_db?sslmode=disable", cfg.PostgresURL())

	cfg.DatabaseURL = "postgres://override/db"
	assert.Equal(t, "postgres://override/db", cfg.PostgresURL())
}
