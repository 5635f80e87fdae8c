// Package config provides configuration management for mcpman using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"mcpman/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "mcpman"

// DefaultBackupRetention is how many backups per config file the prune
// command keeps when the config does not say otherwise.
const DefaultBackupRetention = 10

// Config represents the top-level configuration structure.
type Config struct {
	Version         int      `mapstructure:"version" yaml:"version"`
	DatabasePath    string   `mapstructure:"database_path" yaml:"database_path"`
	BackupRetention int      `mapstructure:"backup_retention" yaml:"backup_retention"`
	DefaultClients  []string `mapstructure:"default_clients" yaml:"default_clients"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.AppConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("MCPMAN")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("database_path", paths.DefaultDatabasePath())
	viper.SetDefault("backup_retention", DefaultBackupRetention)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
