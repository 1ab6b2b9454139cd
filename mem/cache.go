// Package mem provides in-memory implementations of session-scoped stores.
package mem

import (
	"sync"

	"github.com/fwojciec/serpscore"
)

// Ensure RecordCache implements serpscore.RecordCache at compile time.
var _ serpscore.RecordCache = (*RecordCache)(nil)

// RecordCache is a concurrency-safe URL-to-record map. Records are
// idempotent within a session, so concurrent writes for the same URL are
// last-writer-wins without harm.
type RecordCache struct {
	mu      sync.RWMutex
	records map[string]*serpscore.AnalysisRecord
}

// NewRecordCache creates an empty RecordCache.
func NewRecordCache() *RecordCache {
	return &RecordCache{
		records: make(map[string]*serpscore.AnalysisRecord),
	}
}

// Get returns the cached record for url, if any.
func (c *RecordCache) Get(url string) (*serpscore.AnalysisRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, ok := c.records[url]
	return record, ok
}

// Set stores the record for url, replacing any earlier one.
func (c *RecordCache) Set(url string, record *serpscore.AnalysisRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[url] = record
}

// Len reports how many records are cached.
func (c *RecordCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
