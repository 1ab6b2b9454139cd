package mock

import "github.com/fwojciec/serpscore"

var _ serpscore.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of serpscore.Extractor.
type Extractor struct {
	ExtractFn func(page *serpscore.RawPage) (*serpscore.ExtractedText, error)
}

func (e *Extractor) Extract(page *serpscore.RawPage) (*serpscore.ExtractedText, error) {
	return e.ExtractFn(page)
}
