package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"adaptctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/adaptctl"
	projectConfigDir = ".adaptctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the adaptctl configuration by layering default, user, and project settings.
func LoadConfig() (AdaptctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayIfExists(config, userConfigPath); err != nil {
		return AdaptctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayIfExists(config, projectConfigPath); err != nil {
		return AdaptctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if err := config.Validate(); err != nil {
		return AdaptctlConfig{}, err
	}
	return config, nil
}

// LoadConfigFromPath loads the defaults overlaid with config.yaml from dir
// only. User and project configuration are ignored.
func LoadConfigFromPath(dir string) (AdaptctlConfig, error) {
	path := filepath.Join(dir, configFileName)
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return AdaptctlConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}

	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := config.Validate(); err != nil {
		return AdaptctlConfig{}, err
	}
	return config, nil
}

func overlayIfExists(base AdaptctlConfig, path string) (AdaptctlConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "Loaded configuration from %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads an AdaptctlConfig from a YAML file. Relative
// catalog paths are made relative to the file's directory.
func loadConfigFromFile(filePath string) (AdaptctlConfig, error) {
	var config AdaptctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return AdaptctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return AdaptctlConfig{}, err
	}

	dir := filepath.Dir(filePath)
	for i, path := range config.Catalogs {
		if path != "" && !filepath.IsAbs(path) {
			config.Catalogs[i] = filepath.Join(dir, path)
		}
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Catalogs
// accumulate; scalar settings are replaced when set in overlay.
func mergeConfigs(base, overlay AdaptctlConfig) AdaptctlConfig {
	merged := base
	merged.Catalogs = slices.Clone(base.Catalogs)

	for _, path := range overlay.Catalogs {
		if !slices.Contains(merged.Catalogs, path) {
			merged.Catalogs = append(merged.Catalogs, path)
		}
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.Output != "" {
		merged.Output = overlay.Output
	}
	if overlay.RouteDepth != 0 {
		merged.RouteDepth = overlay.RouteDepth
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
