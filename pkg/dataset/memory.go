package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/urlscout/urlscout-cli/pkg/models"
)

// MemoryProvider serves an in-memory collection with an artificial latency
type MemoryProvider struct {
	mu      sync.RWMutex
	records []models.URLRecord
	latency time.Duration
}

// NewMemoryProvider copies records into a new provider
func NewMemoryProvider(records []models.URLRecord, latency time.Duration) *MemoryProvider {
	return &MemoryProvider{
		records: models.CloneRecords(records),
		latency: latency,
	}
}

func (p *MemoryProvider) Search(ctx context.Context, query string) ([]models.URLRecord, error) {
	if p.latency > 0 {
		timer := time.NewTimer(p.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return Filter(p.records, query), nil
}

// Replace swaps the whole collection. Searches already past their latency
// wait see either the old or the new collection, never a mix.
func (p *MemoryProvider) Replace(records []models.URLRecord) {
	clone := models.CloneRecords(records)

	p.mu.Lock()
	p.records = clone
	p.mu.Unlock()
}

// Len returns the number of records
func (p *MemoryProvider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.records)
}
