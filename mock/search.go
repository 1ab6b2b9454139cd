package mock

import (
	"context"

	"github.com/fwojciec/serpscore"
)

var _ serpscore.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of serpscore.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query serpscore.SearchQuery) ([]serpscore.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query serpscore.SearchQuery) ([]serpscore.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
