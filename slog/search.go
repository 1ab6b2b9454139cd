package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/serpscore"
)

// Ensure LoggingSearchService implements serpscore.SearchService.
var _ serpscore.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with per-query logging.
type LoggingSearchService struct {
	next   serpscore.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next serpscore.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) Search(ctx context.Context, query serpscore.SearchQuery) (results []serpscore.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query.Text,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
