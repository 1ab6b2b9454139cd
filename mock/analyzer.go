package mock

import (
	"context"

	"github.com/fwojciec/serpscore"
)

var _ serpscore.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of serpscore.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, url string, language serpscore.Language) *serpscore.AnalysisRecord
}

func (a *Analyzer) Analyze(ctx context.Context, url string, language serpscore.Language) *serpscore.AnalysisRecord {
	return a.AnalyzeFn(ctx, url, language)
}
