package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DirName is the per-user directory holding config and credentials
const DirName = ".azdo"

// Config represents the application configuration
type Config struct {
	Organization string            `mapstructure:"organization"`
	Project      string            `mapstructure:"project"`
	Output       string            `mapstructure:"output"`
	Headers      map[string]string `mapstructure:"headers"`
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to file
func Save(cfg *Config) error {
	viper.Set("organization", cfg.Organization)
	viper.Set("project", cfg.Project)
	viper.Set("output", cfg.Output)
	viper.Set("headers", cfg.Headers)

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		path, err := GetConfigPath()
		if err != nil {
			return err
		}
		configFile = path
	}

	return viper.WriteConfigAs(configFile)
}

// EnsureConfigDir ensures the config directory exists
func EnsureConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, DirName)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.yaml"), nil
}

// SetDefaults sets default configuration values
func SetDefaults() {
	viper.SetDefault("output", "text")
}
