package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"todo/internal/domain"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver    string `toml:"db_driver"`
	DatabaseURL string `toml:"database_url"`
	DBHost      string `toml:"db_host"`
	DBPort      string `toml:"db_port"`
	DBUser      string `toml:"db_user"`
	DBPassword  string `toml:"db_password"`
	DBName      string `toml:"db_name"`
	DBSSLMode   string `toml:"db_sslmode"`
	SQLitePath  string `toml:"sqlite_path"`

	ServerPort string `toml:"server_port"`
	JWTSecret  string `toml:"jwt_secret"`

	MaxProjects int `toml:"max_number_of_project"`
	MaxTasks    int `toml:"max_number_of_task"`

	AutocloseEnabled  bool          `toml:"autoclose_enabled"`
	AutocloseInterval time.Duration `toml:"autoclose_interval"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

func defaults() *Config {
	return &Config{
		DBDriver:          DriverPostgres,
		DBHost:            "localhost",
		DBPort:            "5432",
		DBUser:            "todo_user",
		DBPassword:        "todo_pass",
		DBName:            "todo_db",
		DBSSLMode:         "disable",
		SQLitePath:        "todo.db",
		ServerPort:        "8080",
		MaxProjects:       domain.DefaultMaxProjects,
		MaxTasks:          domain.DefaultMaxTasks,
		AutocloseInterval: 15 * time.Minute,
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

// Load reads configuration from, in increasing precedence: built-in
// defaults, the TOML file named by TODO_CONFIG_FILE, a .env file and the
// process environment.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg := defaults()
	if path := os.Getenv("TODO_CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", cfg.DBDriver))
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.DBSSLMode = getEnv("DB_SSLMODE", cfg.DBSSLMode)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	if cfg.MaxProjects, err = getEnvInt("MAX_NUMBER_OF_PROJECT", cfg.MaxProjects); err != nil {
		return nil, err
	}
	if cfg.MaxTasks, err = getEnvInt("MAX_NUMBER_OF_TASK", cfg.MaxTasks); err != nil {
		return nil, err
	}
	if cfg.AutocloseEnabled, err = getEnvBool("AUTOCLOSE_ENABLED", cfg.AutocloseEnabled); err != nil {
		return nil, err
	}
	if cfg.AutocloseInterval, err = getEnvDuration("AUTOCLOSE_INTERVAL", cfg.AutocloseInterval); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DBDriver)
	}
	if c.AutocloseInterval <= 0 {
		return fmt.Errorf("AUTOCLOSE_INTERVAL must be positive, got %s", c.AutocloseInterval)
	}
	return nil
}

// Limits returns the population caps. A value of zero or less disables a cap.
func (c *Config) Limits() domain.Limits {
	return domain.Limits{MaxProjects: c.MaxProjects, MaxTasks: c.MaxTasks}
}

// PostgresURL returns DATABASE_URL when set, otherwise a postgres:// URL
// assembled from the discrete DB_* settings.
func (c *Config) PostgresURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
