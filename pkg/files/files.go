package files

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/urlscout/urlscout-cli/pkg/models"
)

const (
	SettingsFile = "settings.yaml"
	DatasetFile  = "dataset.yaml"
)

// ScoutDir is the project directory holding settings and datasets
var ScoutDir = ".urlscout"

// SettingsPath returns the path of the project settings file
func SettingsPath() string {
	return filepath.Join(ScoutDir, SettingsFile)
}

// DatasetPath returns the path of the project dataset file
func DatasetPath() string {
	return filepath.Join(ScoutDir, DatasetFile)
}

func InitProjectStructure() error {
	if err := os.MkdirAll(ScoutDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ScoutDir, err)
	}
	return nil
}

// ProjectExists reports whether the project directory is present
func ProjectExists() bool {
	info, err := os.Stat(ScoutDir)
	return err == nil && info.IsDir()
}

// ReadSettings reads the project settings, filling in defaults.
// A missing file is not an error.
func ReadSettings() (*models.Settings, error) {
	return ReadSettingsFrom(SettingsPath())
}

// ReadSettingsFrom reads settings from an explicit path
func ReadSettingsFrom(path string) (*models.Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}
	settings.ApplyDefaults()

	return settings, nil
}

func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	return WriteFile(SettingsPath(), string(content))
}

// ReadDataset loads URL records from a YAML or JSON dataset file
func ReadDataset(path string) ([]models.URLRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var dataset models.Dataset
	if isJSON(path) {
		err = json.Unmarshal(content, &dataset)
	} else {
		err = yaml.Unmarshal(content, &dataset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	seen := make(map[int]bool, len(dataset.URLs))
	for _, r := range dataset.URLs {
		if seen[r.ID] {
			return nil, fmt.Errorf("dataset %s: duplicate id %d", path, r.ID)
		}
		seen[r.ID] = true
		if _, err := models.ParseFileType(string(r.FileType)); err != nil {
			return nil, fmt.Errorf("dataset %s: record %d: %w", path, r.ID, err)
		}
	}

	return dataset.URLs, nil
}

// WriteDataset writes URL records as YAML, or JSON for a .json path
func WriteDataset(path string, records []models.URLRecord) error {
	dataset := models.Dataset{URLs: records}

	var (
		content []byte
		err     error
	)
	if isJSON(path) {
		content, err = json.MarshalIndent(dataset, "", "  ")
	} else {
		content, err = yaml.Marshal(dataset)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}

	return WriteFile(path, string(content))
}

// WriteFile writes content to a file, creating parent directories
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
