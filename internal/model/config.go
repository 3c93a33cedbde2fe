package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DatabaseConfig holds settings for the local store.
type DatabaseConfig struct {
	// Path is the SQLite database file path.
	Path string `mapstructure:"path" yaml:"path"`
}

// DashboardConfig holds settings for metric computation.
type DashboardConfig struct {
	// UpcomingHorizonDays is the window for upcoming deadlines.
	UpcomingHorizonDays int `mapstructure:"upcoming_horizon_days" yaml:"upcoming_horizon_days"`

	// UpcomingLimit caps how many upcoming tasks are surfaced.
	UpcomingLimit int `mapstructure:"upcoming_limit" yaml:"upcoming_limit"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database  DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Dashboard DashboardConfig `mapstructure:"dashboard" yaml:"dashboard"`

	// Actor is recorded on activity entries written by this client.
	Actor string `mapstructure:"actor" yaml:"actor"`
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/tracker/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "tracker", "config.yaml")
}

// DefaultDatabasePath returns the default SQLite database location.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "tracker.db")
	}
	return filepath.Join(home, ".local", "share", "tracker", "tracker.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{
			Path: DefaultDatabasePath(),
		},
		Dashboard: DashboardConfig{
			UpcomingHorizonDays: 7,
			UpcomingLimit:       5,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using
// Viper. If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("database.path", DefaultDatabasePath())
	v.SetDefault("dashboard.upcoming_horizon_days", 7)
	v.SetDefault("dashboard.upcoming_limit", 5)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Dashboard.UpcomingHorizonDays <= 0 {
		cfg.Dashboard.UpcomingHorizonDays = 7
	}
	if cfg.Dashboard.UpcomingLimit <= 0 {
		cfg.Dashboard.UpcomingLimit = 5
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("dashboard", cfg.Dashboard)
	v.Set("actor", cfg.Actor)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
