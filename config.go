package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigDir = ".directory/"

// Name-collision scopes for newly derived entry names (see settings.yaml).
const (
	CollisionScopeStore = "store"
	CollisionScopeRun   = "run"
)

//go:embed config/settings.yaml
var defaultSettings string

// CategoryRule is one keyword group in the category table. Rules are tested
// in file order against name+description text; the first match wins.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Settings is the YAML configuration for the whole tool. The query list,
// noise-domain denylist and category keyword table live here rather than in
// code so tests and deployments can substitute their own.
type Settings struct {
	Data struct {
		PlatformsPath string `yaml:"platforms_path"`
		StudiosPath   string `yaml:"studios_path"`
	} `yaml:"data"`
	Search struct {
		Endpoint   string   `yaml:"endpoint"`
		MaxResults int      `yaml:"max_results"`
		Queries    []string `yaml:"queries"`
	} `yaml:"search"`
	Discovery struct {
		FetchTimeoutSeconds int      `yaml:"fetch_timeout_seconds"`
		UserAgent           string   `yaml:"user_agent"`
		SkipDomains         []string `yaml:"skip_domains"`
		NameCollisionScope  string   `yaml:"name_collision_scope"`
		ReviewDirectory     string   `yaml:"review_directory"`
	} `yaml:"discovery"`
	Categories []CategoryRule `yaml:"categories"`
}

// GetConfigPath returns the full path to a config file
func GetConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// DefaultSettings parses the embedded settings file.
func DefaultSettings() (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal([]byte(defaultSettings), &settings); err != nil {
		return nil, fmt.Errorf("parsing embedded settings: %w", err)
	}
	return &settings, nil
}

// LoadSettings loads settings from a YAML file, falling back to the embedded
// defaults when path is empty or the default settings file does not exist.
// An explicitly given path must exist.
func LoadSettings(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = GetConfigPath("settings.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return DefaultSettings()
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}

	if err := validateSettings(&settings); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return &settings, nil
}

func validateSettings(s *Settings) error {
	if s.Data.PlatformsPath == "" {
		return fmt.Errorf("data.platforms_path is required")
	}
	if s.Search.MaxResults <= 0 {
		s.Search.MaxResults = 20
	}
	if s.Discovery.FetchTimeoutSeconds <= 0 {
		s.Discovery.FetchTimeoutSeconds = 8
	}
	switch s.Discovery.NameCollisionScope {
	case "":
		s.Discovery.NameCollisionScope = CollisionScopeStore
	case CollisionScopeStore, CollisionScopeRun:
	default:
		return fmt.Errorf("discovery.name_collision_scope must be %q or %q, got %q",
			CollisionScopeStore, CollisionScopeRun, s.Discovery.NameCollisionScope)
	}
	return nil
}

// ensureConfigExists creates the config directory and writes the default
// settings.yaml on first run so users have something to edit.
func ensureConfigExists() error {
	if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	settingsFile := GetConfigPath("settings.yaml")
	if _, err := os.Stat(settingsFile); os.IsNotExist(err) {
		if err := os.WriteFile(settingsFile, []byte(defaultSettings), 0644); err != nil {
			return fmt.Errorf("writing settings.yaml: %w", err)
		}
	}

	return nil
}
