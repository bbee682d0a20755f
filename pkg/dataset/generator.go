package dataset

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/urlscout/urlscout-cli/pkg/models"
)

// DefaultSize is the number of records generated when none is configured
const DefaultSize = 100

// Generate builds count random URL records with sequential ids starting at 0.
// A zero seed picks a random one.
func Generate(count int, seed uint64) []models.URLRecord {
	if count < 0 {
		count = 0
	}

	faker := gofakeit.New(seed)
	records := make([]models.URLRecord, count)
	for i := range records {
		fileType := models.FileTypeFolder
		if faker.Bool() {
			fileType = models.FileTypeFile
		}
		records[i] = models.URLRecord{
			ID:       i,
			URL:      faker.URL(),
			FileType: fileType,
		}
	}
	return records
}
