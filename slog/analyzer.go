package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/serpscore"
)

// Ensure LoggingAnalyzer implements serpscore.Analyzer.
var _ serpscore.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with per-URL logging. Analyze never
// returns an error, so failures surface through the record's success flag.
type LoggingAnalyzer struct {
	next   serpscore.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next serpscore.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, url string, language serpscore.Language) (record *serpscore.AnalysisRecord) {
	defer func(begin time.Time) {
		a.logger.Info("analyze",
			"url", url,
			"language", string(language),
			"success", record.Success,
			"combined_score", record.CombinedScore,
			"words", record.WordCount,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return a.next.Analyze(ctx, url, language)
}
