package models

import (
	"testing"
)

func TestParseFileType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FileType
		wantErr bool
	}{
		{"file", "file", FileTypeFile, false},
		{"folder", "folder", FileTypeFolder, false},
		{"uppercase rejected", "FILE", "", true},
		{"empty rejected", "", "", true},
		{"unknown rejected", "directory", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFileType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFileType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFileType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCloneRecords(t *testing.T) {
	if CloneRecords(nil) != nil {
		t.Error("CloneRecords(nil) should stay nil")
	}

	records := []URLRecord{{ID: 1, URL: "https://a.com/1", FileType: FileTypeFile}}
	clone := CloneRecords(records)
	clone[0].URL = "changed"

	if records[0].URL != "https://a.com/1" {
		t.Errorf("clone shares backing array with original: %q", records[0].URL)
	}
}
