package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urlscout/urlscout-cli/pkg/models"
)

var twoRecords = []models.URLRecord{
	{ID: 0, URL: "https://a.com/1", FileType: models.FileTypeFile},
	{ID: 1, URL: "https://b.com/2", FileType: models.FileTypeFolder},
}

func urlsOf(records []models.URLRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.URL
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"substring match", "a.com", []string{"https://a.com/1"}},
		{"no match", "zzz", []string{}},
		{"empty matches all", "", []string{"https://a.com/1", "https://b.com/2"}},
		{"shared prefix keeps order", "https://", []string{"https://a.com/1", "https://b.com/2"}},
		{"case sensitive", "A.COM", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(twoRecords, tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, urlsOf(got))
		})
	}
}

func TestFilterDoesNotAlias(t *testing.T) {
	records := models.CloneRecords(twoRecords)
	got := Filter(records, "")
	got[0].URL = "mutated"

	assert.Equal(t, "https://a.com/1", records[0].URL)
}

func TestFindByID(t *testing.T) {
	p := NewMemoryProvider(twoRecords, 0)

	r, ok, err := FindByID(context.Background(), p, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "https://b.com/2", r.URL)

	_, ok, err = FindByID(context.Background(), p, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}
