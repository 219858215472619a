// Package database opens the gorm connection for the configured driver and
// brings its schema up to date.
package database

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/glebarez/sqlite"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"todo/internal/config"
	"todo/internal/model"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open connects to the store selected by cfg.DBDriver.
func Open(cfg *config.Config, logger *log.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := gorm.Open(postgres.Open(cfg.PostgresURL()), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		logger.Info("✅ Connected to database", "driver", cfg.DBDriver)
		return db, nil

	case config.DriverSQLite:
		if err := ensureDir(cfg.SQLitePath); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
		db, err := gorm.Open(sqlite.Open(sqliteDSN(cfg.SQLitePath)), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer; one connection also keeps an
		// in-memory database alive and shared.
		sqlDB.SetMaxOpenConns(1)
		logger.Info("✅ Connected to database", "driver", cfg.DBDriver, "path", cfg.SQLitePath)
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Migrate applies pending schema changes. Postgres runs the embedded SQL
// migrations through golang-migrate on its own connection; sqlite is kept in
// step with the models by gorm's AutoMigrate.
func Migrate(cfg *config.Config, db *gorm.DB, logger *log.Logger) error {
	if cfg.DBDriver == config.DriverSQLite {
		if err := db.AutoMigrate(&model.Project{}, &model.Task{}); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
		logger.Info("✅ Database schema is up to date")
		return nil
	}

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.PostgresURL())
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	logger.Info("✅ Database schema is up to date", "version", version, "dirty", dirty)
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func ensureDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
