package serpscore

import "context"

// SearchResult is a single organic entry from a search-engine results page.
type SearchResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Snippet  string `json:"snippet"`
}

// SearchQuery describes one SERP request.
type SearchQuery struct {
	// Text is the search phrase.
	Text string

	// MaxResults caps how many results are returned. Implementations
	// page through the engine as needed to reach it.
	MaxResults int

	// Language is the interface-language hint (hl), e.g. "en", "da".
	Language string

	// Country is the geolocation hint (gl), e.g. "us", "dk".
	Country string
}

// SearchService retrieves ordered organic results for a query.
// Returned positions are renumbered sequentially from 1 so pagination
// boundaries never show through.
type SearchService interface {
	Search(ctx context.Context, query SearchQuery) ([]SearchResult, error)
}
