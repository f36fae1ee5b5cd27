package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/salestrack/internal/util"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration. Precedence, lowest first:
// defaults, YAML file, .env file, process environment.
type Config struct {
	DataDir  string         `yaml:"data_dir" env:"DATA_DIR"`
	Database DatabaseConfig `yaml:"database" envPrefix:"DB_"`
	Logging  LoggingConfig  `yaml:"logging" envPrefix:"LOG_"`
	Export   ExportConfig   `yaml:"export" envPrefix:"EXPORT_"`
}

// DatabaseConfig configures the embedded store.
type DatabaseConfig struct {
	Path         string        `yaml:"path" env:"PATH"`
	Driver       string        `yaml:"driver" env:"DRIVER"` // sqlite3 (cgo) or sqlite (pure Go)
	BusyTimeout  time.Duration `yaml:"busy_timeout" env:"BUSY_TIMEOUT"`
	QueryTimeout time.Duration `yaml:"query_timeout" env:"QUERY_TIMEOUT"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level" env:"LEVEL"`   // debug, info, warn, error
	Format   string `yaml:"format" env:"FORMAT"` // json, console
	File     string `yaml:"file" env:"FILE"`     // empty means stderr
	TraceSQL bool   `yaml:"trace_sql" env:"TRACE_SQL"`
}

// ExportConfig configures where exports are written.
type ExportConfig struct {
	Dir string `yaml:"dir" env:"DIR"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir: util.UserDirs(AppName).Data(),
		Database: DatabaseConfig{
			Driver:       DriverMattn,
			BusyTimeout:  DefaultBusyTimeout,
			QueryTimeout: DefaultQueryTimeout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultConfigPath is where Load looks when no path is given.
func DefaultConfigPath() string {
	return filepath.Join(util.UserDirs(AppName).Data(), "config.yaml")
}

// Load builds the configuration. An explicit path must exist; the default
// path is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if err := cfg.loadYAML(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// Validate rejects settings the store or logger cannot use.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMattn, DriverModernc:
	default:
		return fmt.Errorf("unknown database driver %q (want %s or %s)", c.Database.Driver, DriverMattn, DriverModernc)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	if c.Database.QueryTimeout < 0 || c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database timeouts must not be negative")
	}
	return nil
}

// DBPath resolves the database file location.
func (c *Config) DBPath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return filepath.Join(c.DataDir, DBFileName)
}

// ExportDir resolves the export directory.
func (c *Config) ExportDir() string {
	if c.Export.Dir != "" {
		return c.Export.Dir
	}
	return util.UserDirs(AppName).Exports()
}
