package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"holdguard/internal/ui/animation"
	"holdguard/internal/ui/preferences"
)

const (
	settingsFileName = "settings.yaml"

	maxSamplingInterval = time.Second
)

type yamlSettings struct {
	HoldDurationMs     int    `yaml:"hold_duration_ms"`
	SamplingIntervalMs int    `yaml:"sampling_interval_ms"`
	Disabled           bool   `yaml:"disabled"`
	Style              string `yaml:"style"`
}

// LoadSettings reads user preferences from the YAML file at configPath.
// If the file does not exist, default settings are returned.
func LoadSettings(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the YAML file at configPath.
func SaveSettings(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		HoldDurationMs:     int(settings.HoldDuration / time.Millisecond),
		SamplingIntervalMs: int(settings.SamplingInterval / time.Millisecond),
		Disabled:           settings.Disabled,
		Style:              string(settings.Style),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the settings file location under the user
// config directory.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.HoldDurationMs > 0 {
		settings.HoldDuration = time.Duration(fileData.HoldDurationMs) * time.Millisecond
	}
	interval := time.Duration(fileData.SamplingIntervalMs) * time.Millisecond
	if interval > 0 && interval <= maxSamplingInterval {
		settings.SamplingInterval = interval
	}
	if style, err := animation.ParseStyle(fileData.Style); err == nil {
		settings.Style = style
	}

	settings.Disabled = fileData.Disabled
}
