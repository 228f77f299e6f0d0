// Package config resolves where the todo-tracker database lives.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const envPrefix = "TODOTRACKER"

// Config holds the resolved runtime settings for the core.
type Config struct {
	// DatabasePath is the SQLite database file location.
	DatabasePath string `mapstructure:"db_path"`
}

// defaultDataDir returns the per-user data directory, falling back to the
// current directory when the platform dir cannot be determined.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "todo-tracker")
}

// Load resolves the configuration from an optional config.yaml in the data
// directory plus TODOTRACKER_* environment variables. Environment values take
// precedence; a missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultDataDir())

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("db_path", filepath.Join(defaultDataDir(), "todos.db"))

	if err := v.ReadInConfig(); err != nil {
		_, pathErr := err.(*os.PathError)
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !pathErr && !notFound {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// EnsureDataDir creates the parent directory of the database file.
func (c *Config) EnsureDataDir() error {
	dir := filepath.Dir(c.DatabasePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return nil
}
