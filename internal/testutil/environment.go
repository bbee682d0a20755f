// Package testutil sets up throwaway urlscout projects for tests
package testutil

import (
	"os"
	"testing"

	"github.com/urlscout/urlscout-cli/internal/logging"
	"github.com/urlscout/urlscout-cli/pkg/files"
	"github.com/urlscout/urlscout-cli/pkg/models"
)

// TestEnvironment is a temporary working directory holding a project
type TestEnvironment struct {
	t          *testing.T
	TempDir    string
	OriginalWd string
}

// NewTestEnvironment creates a temp dir and changes into it. The original
// working directory is restored when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	env := &TestEnvironment{
		t:          t,
		TempDir:    t.TempDir(),
		OriginalWd: originalWd,
	}
	if err := os.Chdir(env.TempDir); err != nil {
		t.Fatalf("Failed to change to temp dir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(originalWd) })

	return env
}

// InitProject writes a dataset file with records and settings pointing at
// it with no latency and no log file. mutate, when set, edits the settings
// before they are written.
func (e *TestEnvironment) InitProject(records []models.URLRecord, mutate func(*models.Settings)) *models.Settings {
	e.t.Helper()

	if err := files.InitProjectStructure(); err != nil {
		e.t.Fatalf("Failed to init project: %v", err)
	}
	if err := files.WriteDataset(files.DatasetPath(), records); err != nil {
		e.t.Fatalf("Failed to write dataset: %v", err)
	}

	settings := models.DefaultSettings()
	settings.Dataset.Source = models.SourceFile
	settings.Dataset.Path = files.DatasetPath()
	settings.Dataset.LatencyMS = 0
	settings.Logging.File = logging.Disabled
	if mutate != nil {
		mutate(settings)
	}
	if err := files.WriteSettings(settings); err != nil {
		e.t.Fatalf("Failed to write settings: %v", err)
	}
	return settings
}
