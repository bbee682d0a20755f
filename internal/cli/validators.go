package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urlscout/urlscout-cli/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateSource validates a dataset source name
func ValidateSource(source string) error {
	switch source {
	case models.SourceMemory, models.SourceFile, models.SourceSQLite:
		return nil
	}
	return fmt.Errorf("invalid dataset source: %s (must be: memory, file, or sqlite)", source)
}

// ParseRecordID parses a record id argument
func ParseRecordID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid record id: %q (must be a non-negative integer)", arg)
	}
	return id, nil
}

// DatasetKind is how a dataset file is written, chosen by extension
type DatasetKind string

const (
	DatasetYAML   DatasetKind = "yaml"
	DatasetJSON   DatasetKind = "json"
	DatasetSQLite DatasetKind = "sqlite"
)

// DatasetKindFor maps an output path to its dataset kind
func DatasetKindFor(path string) (DatasetKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DatasetYAML, nil
	case ".json":
		return DatasetJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return DatasetSQLite, nil
	}
	return "", fmt.Errorf("unsupported dataset extension: %q (must be: .yaml, .yml, .json, .db or .sqlite)", filepath.Ext(path))
}

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}
