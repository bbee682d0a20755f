// Package dataset holds the URL record collections the search pipeline
// queries, and the providers that serve them.
package dataset

import (
	"context"
	"strings"

	"github.com/urlscout/urlscout-cli/pkg/models"
)

// Provider answers substring queries over a fixed collection of URL records.
//
// Search matches records whose URL contains query (case-sensitive) and keeps
// the collection order. The empty query matches every record. When ctx is
// cancelled before the search completes, Search returns ctx.Err() and no
// records.
type Provider interface {
	Search(ctx context.Context, query string) ([]models.URLRecord, error)
}

// Filter returns the records whose URL contains query, in their original
// order. The result never aliases records.
func Filter(records []models.URLRecord, query string) []models.URLRecord {
	out := make([]models.URLRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(r.URL, query) {
			out = append(out, r)
		}
	}
	return out
}

// FindByID returns the record with the given id
func FindByID(ctx context.Context, p Provider, id int) (models.URLRecord, bool, error) {
	all, err := p.Search(ctx, "")
	if err != nil {
		return models.URLRecord{}, false, err
	}
	for _, r := range all {
		if r.ID == id {
			return r, true, nil
		}
	}
	return models.URLRecord{}, false, nil
}
