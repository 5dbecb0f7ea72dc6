package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"multitimer/internal/core/model"
)

const configFileName = "config.yaml"

type yamlConfig struct {
	TickIntervalMillis   int     `yaml:"tick_interval_millis"`
	MobileBreakpoint     float32 `yaml:"mobile_breakpoint"`
	ResizeDebounceMillis int     `yaml:"resize_debounce_millis"`
	DefaultMinutes       int     `yaml:"default_minutes"`
	DefaultSeconds       int     `yaml:"default_seconds"`
	SegmentCount         int     `yaml:"segment_count"`
	SegmentedAnimation   bool    `yaml:"segmented_animation"`
	AutoStart            bool    `yaml:"auto_start"`
}

// LoadConfig reads application configuration from the user config dir.
// If the config file does not exist, the default configuration is returned.
func LoadConfig(appName string) (model.Config, error) {
	config := model.DefaultConfig()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return config, err
	}
	return loadConfigFile(configPath, config)
}

// LoadConfigFile reads application configuration from an explicit path,
// falling back to defaults for absent keys.
func LoadConfigFile(path string) (model.Config, error) {
	return loadConfigFile(path, model.DefaultConfig())
}

func loadConfigFile(path string, config model.Config) (model.Config, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	applyYamlConfig(&config, fileData)
	return config, nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

func applyYamlConfig(config *model.Config, fileData yamlConfig) {
	if fileData.TickIntervalMillis > 0 {
		config.Engine.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	if fileData.MobileBreakpoint > 0 {
		config.UIMode.MobileBreakpoint = fileData.MobileBreakpoint
	}
	if fileData.ResizeDebounceMillis > 0 {
		config.UIMode.ResizeDebounce = time.Duration(fileData.ResizeDebounceMillis) * time.Millisecond
	}
	if fileData.DefaultMinutes > 0 {
		config.Entry.Minutes = fileData.DefaultMinutes
	}
	if fileData.DefaultSeconds > 0 {
		config.Entry.Seconds = fileData.DefaultSeconds
	}
	if fileData.SegmentCount > 0 {
		config.Entry.SegmentCount = fileData.SegmentCount
	}

	config.Toggles.SegmentedAnimation = fileData.SegmentedAnimation
	config.Toggles.AutoStart = fileData.AutoStart
}
