// Package config provides configuration management for Volume Lock.
// It handles loading, saving, and managing application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"volumelock/common"
)

// WindowPosition is the persisted position of the main window.
type WindowPosition struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// DebugLevel sets the minimum log level: "debug", "info", "warn", "error".
	DebugLevel string `yaml:"debug_level"`
	// Locked indicates whether volume locking is currently active.
	Locked bool `yaml:"locked"`
	// TargetVolume is the level (0-100) locked devices are pinned at.
	TargetVolume int `yaml:"target_volume"`
	// Devices lists the ids of the devices selected for locking.
	Devices []string `yaml:"devices"`
	// WindowPosition is the last position of the main window.
	WindowPosition WindowPosition `yaml:"window_position"`
	// ShowNotifications enables desktop notifications for lock events.
	ShowNotifications bool `yaml:"show_notifications"`
}

// DefaultConfig returns the default configuration.
// These are sensible defaults for most users.
func DefaultConfig() *Config {
	return &Config{
		DebugLevel:        "info",
		Locked:            false,
		TargetVolume:      50,
		Devices:           nil,
		WindowPosition:    WindowPosition{X: -1, Y: -1},
		ShowNotifications: true,
	}
}

// Load loads the configuration from the config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.SaveTo(path); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening configuration: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	var config Config
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("error parsing configuration: %w", err)
	}

	config.validate()

	return &config, nil
}

// validate repairs out-of-range values, falling back to defaults.
func (c *Config) validate() {
	switch c.DebugLevel {
	case "debug", "info", "warn", "error":
	default:
		c.DebugLevel = "info"
	}
	c.TargetVolume = common.ClampVolume(c.TargetVolume)
}

// LogLevel returns the configured level as a logger level.
func (c *Config) LogLevel() common.LogLevel {
	return common.ParseLogLevel(c.DebugLevel)
}

// HasDevice reports whether a device id is selected for locking.
func (c *Config) HasDevice(deviceID string) bool {
	return common.StringInSlice(deviceID, c.Devices)
}

// Save saves the configuration to the config file.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing configuration: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}

	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", common.ConfigDirName, common.ConfigFileName), nil
}
