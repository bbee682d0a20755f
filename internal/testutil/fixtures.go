package testutil

import "github.com/urlscout/urlscout-cli/pkg/models"

// SampleRecords returns the two-record dataset used across tests
func SampleRecords() []models.URLRecord {
	return []models.URLRecord{
		{ID: 0, URL: "https://a.com/1", FileType: models.FileTypeFile},
		{ID: 1, URL: "https://b.com/2", FileType: models.FileTypeFolder},
	}
}
