package models

import "fmt"

// FileType tells whether a URL points at a file or a folder
type FileType string

const (
	FileTypeFile   FileType = "file"
	FileTypeFolder FileType = "folder"
)

// ParseFileType converts a string to a FileType
func ParseFileType(s string) (FileType, error) {
	switch FileType(s) {
	case FileTypeFile, FileTypeFolder:
		return FileType(s), nil
	default:
		return "", fmt.Errorf("invalid file type: %q (must be: file or folder)", s)
	}
}

// URLRecord is a single entry of the searchable dataset
type URLRecord struct {
	ID       int      `yaml:"id" json:"id"`
	URL      string   `yaml:"url" json:"url"`
	FileType FileType `yaml:"file_type" json:"file_type"`
}

// Dataset is the on-disk shape of a dataset file
type Dataset struct {
	URLs []URLRecord `yaml:"urls" json:"urls"`
}

// CloneRecords returns a copy of records that shares no backing array
func CloneRecords(records []URLRecord) []URLRecord {
	if records == nil {
		return nil
	}
	out := make([]URLRecord, len(records))
	copy(out, records)
	return out
}
