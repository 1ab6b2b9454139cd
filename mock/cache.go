package mock

import "github.com/fwojciec/serpscore"

var _ serpscore.RecordCache = (*RecordCache)(nil)

// RecordCache is a mock implementation of serpscore.RecordCache.
type RecordCache struct {
	GetFn func(url string) (*serpscore.AnalysisRecord, bool)
	SetFn func(url string, record *serpscore.AnalysisRecord)
}

func (c *RecordCache) Get(url string) (*serpscore.AnalysisRecord, bool) {
	return c.GetFn(url)
}

func (c *RecordCache) Set(url string, record *serpscore.AnalysisRecord) {
	c.SetFn(url, record)
}
