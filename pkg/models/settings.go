package models

import "time"

// Dataset sources
const (
	SourceMemory = "memory"
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// Settings represents the application configuration
type Settings struct {
	Search  SearchSettings  `yaml:"search"`
	Dataset DatasetSettings `yaml:"dataset"`
	Logging LoggingSettings `yaml:"logging"`
}

// SearchSettings controls the incremental search pipeline
type SearchSettings struct {
	DebounceMS int  `yaml:"debounce_ms"`
	StrictURL  bool `yaml:"strict_url"`
}

// DatasetSettings selects and shapes the dataset provider
type DatasetSettings struct {
	Source    string `yaml:"source"` // "memory", "file" or "sqlite"
	Path      string `yaml:"path,omitempty"`
	Size      int    `yaml:"size"`
	Seed      uint64 `yaml:"seed,omitempty"`
	LatencyMS int    `yaml:"latency_ms"`
	Watch     bool   `yaml:"watch,omitempty"`
}

// LoggingSettings controls the log file
type LoggingSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // "none" disables logging
}

// Debounce returns the debounce interval
func (s SearchSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// Latency returns the artificial provider latency
func (d DatasetSettings) Latency() time.Duration {
	return time.Duration(d.LatencyMS) * time.Millisecond
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Search: SearchSettings{
			DebounceMS: 1000,
			StrictURL:  false,
		},
		Dataset: DatasetSettings{
			Source:    SourceMemory,
			Size:      100,
			LatencyMS: 1000,
		},
		Logging: LoggingSettings{
			Level: "info",
			File:  "urlscout.log",
		},
	}
}

// ApplyDefaults fills zero values with their defaults
func (s *Settings) ApplyDefaults() {
	def := DefaultSettings()
	if s.Search.DebounceMS <= 0 {
		s.Search.DebounceMS = def.Search.DebounceMS
	}
	if s.Dataset.Source == "" {
		s.Dataset.Source = def.Dataset.Source
	}
	if s.Dataset.Size <= 0 {
		s.Dataset.Size = def.Dataset.Size
	}
	if s.Dataset.LatencyMS < 0 {
		s.Dataset.LatencyMS = 0
	}
	if s.Logging.Level == "" {
		s.Logging.Level = def.Logging.Level
	}
	if s.Logging.File == "" {
		s.Logging.File = def.Logging.File
	}
}
