package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
// It is read-only after Load() returns and thread-safe for concurrent reads.
type Config struct {
	Server   ServerConfig          `yaml:"server"`
	Database DatabaseConfig        `yaml:"database"`
	Insights InsightsConfig        `yaml:"insights"`
	Auth     AuthConfig            `yaml:"auth"`
	Worker   WorkerConfig          `yaml:"worker"`
	Snapshot SnapshotStorageConfig `yaml:"snapshot_storage"`
	Demo     DemoConfig            `yaml:"demo"`
	Log      LogConfig             `yaml:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int      `yaml:"port"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// InsightsConfig contains AI insights collaborator settings.
type InsightsConfig struct {
	APIKey string `yaml:"-"` // env-only, never in YAML
	Model  string `yaml:"model"`
}

// AuthConfig contains authentication settings. An empty key disables
// authentication (local single-user mode).
type AuthConfig struct {
	APIKey string `yaml:"-"` // env-only, never in YAML
}

// WorkerConfig contains background worker settings. A zero snapshot
// interval disables the backup worker.
type WorkerConfig struct {
	SnapshotInterval Duration `yaml:"snapshot_interval"`
}

// SnapshotStorageConfig contains S3-compatible snapshot upload settings.
// An empty bucket keeps the system in local-only mode.
type SnapshotStorageConfig struct {
	Bucket    string `yaml:"bucket"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"-"` // env-only, never in YAML
	SecretKey string `yaml:"-"` // env-only, never in YAML
	UseSSL    *bool  `yaml:"use_ssl"`
}

// DemoConfig contains demo/simulation settings.
type DemoConfig struct {
	ConnectDelay Duration `yaml:"connect_delay"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Duration is a wrapper around time.Duration that supports YAML string parsing.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Load loads configuration with precedence: defaults → YAML file → env vars.
// Returns an immutable Config suitable for concurrent read access.
func Load() (*Config, error) {
	cfg := newDefaults()

	configPath := getEnv("CRMHUB_CONFIG_PATH", "config/crmhub.yaml")

	// Load YAML file if it exists (missing file is not an error)
	if err := loadYAMLFile(cfg, configPath); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific path.
// Used for testing and explicit path specification.
func LoadFromFile(path string) (*Config, error) {
	cfg := newDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newDefaults returns a Config with all default values.
func newDefaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     Duration(30 * time.Second),
			WriteTimeout:    Duration(30 * time.Second),
			ShutdownTimeout: Duration(15 * time.Second),
		},
		Database: DatabaseConfig{
			Path: "data/crmhub.db",
		},
		Insights: InsightsConfig{
			Model: "gpt-4o-mini",
		},
		Worker: WorkerConfig{
			SnapshotInterval: Duration(1 * time.Hour),
		},
		Demo: DemoConfig{
			ConnectDelay: Duration(2 * time.Second),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// loadYAMLFile loads configuration from a YAML file if it exists.
// Missing file is not an error; we just use defaults.
func loadYAMLFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Only non-empty env vars override config values.
func applyEnvOverrides(cfg *Config) {
	// Server
	if v := os.Getenv("CRMHUB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("CRMHUB_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ReadTimeout = Duration(d)
		}
	}
	if v := os.Getenv("CRMHUB_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.WriteTimeout = Duration(d)
		}
	}
	if v := os.Getenv("CRMHUB_SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ShutdownTimeout = Duration(d)
		}
	}

	// Database
	if v := os.Getenv("CRMHUB_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}

	// Insights (OPENAI_API_KEY is industry convention)
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Insights.APIKey = v
	}
	if v := os.Getenv("CRMHUB_INSIGHTS_MODEL"); v != "" {
		cfg.Insights.Model = v
	}

	// Auth
	if v := os.Getenv("CRMHUB_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}

	// Worker
	if v := os.Getenv("CRMHUB_SNAPSHOT_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Worker.SnapshotInterval = Duration(d)
		}
	}

	// Snapshot storage
	if v := os.Getenv("CRMHUB_SNAPSHOT_BUCKET"); v != "" {
		cfg.Snapshot.Bucket = v
	}
	if v := os.Getenv("CRMHUB_S3_ENDPOINT"); v != "" {
		cfg.Snapshot.Endpoint = v
	}
	if v := os.Getenv("CRMHUB_S3_REGION"); v != "" {
		cfg.Snapshot.Region = v
	}
	if v := os.Getenv("CRMHUB_S3_ACCESS_KEY"); v != "" {
		cfg.Snapshot.AccessKey = v
	}
	if v := os.Getenv("CRMHUB_S3_SECRET_KEY"); v != "" {
		cfg.Snapshot.SecretKey = v
	}
	if v := os.Getenv("CRMHUB_S3_USE_SSL"); v != "" {
		useSSL := v == "true" || v == "1"
		cfg.Snapshot.UseSSL = &useSSL
	}

	// Demo
	if v := os.Getenv("CRMHUB_DEMO_CONNECT_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Demo.ConnectDelay = Duration(d)
		}
	}

	// Log
	if v := os.Getenv("CRMHUB_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CRMHUB_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// validate checks that configuration values are consistent. The OpenAI
// and auth keys are optional: without the former the insights endpoint
// serves its fallback, without the latter the API is open (local mode).
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}
	if c.Snapshot.Bucket != "" && c.Snapshot.Endpoint == "" {
		return errors.New("snapshot storage endpoint is required when a bucket is set")
	}
	return nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
