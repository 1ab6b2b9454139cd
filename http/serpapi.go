package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/serpscore"
)

// DefaultSerpAPIBaseURL is the production SerpAPI endpoint.
const DefaultSerpAPIBaseURL = "https://serpapi.com"

// serpPageSize is the engine's maximum organic results per request.
// Pagination advances the start offset in steps of it.
const serpPageSize = 10

// Ensure SerpAPIService implements serpscore.SearchService at compile time.
var _ serpscore.SearchService = (*SerpAPIService)(nil)

// SerpAPIService retrieves Google results through the SerpAPI JSON
// endpoint. Requires an API key.
type SerpAPIService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// SerpAPIOption configures a SerpAPIService.
type SerpAPIOption func(*SerpAPIService)

// WithSerpAPIBaseURL points the service at a different endpoint.
func WithSerpAPIBaseURL(u string) SerpAPIOption {
	return func(s *SerpAPIService) {
		s.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithSerpAPIClient replaces the underlying HTTP client.
func WithSerpAPIClient(c *http.Client) SerpAPIOption {
	return func(s *SerpAPIService) {
		s.client = c
	}
}

// NewSerpAPIService creates a SerpAPIService using the given API key.
func NewSerpAPIService(apiKey string, opts ...SerpAPIOption) *SerpAPIService {
	s := &SerpAPIService{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: DefaultSerpAPIBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// organicResult mirrors the response fields this service uses.
type organicResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
}

type searchResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
}

// Search pages through results ten at a time until MaxResults are
// collected or a short batch signals the end. Positions are renumbered
// sequentially across pages.
func (s *SerpAPIService) Search(ctx context.Context, query serpscore.SearchQuery) ([]serpscore.SearchResult, error) {
	if s.apiKey == "" {
		return nil, serpscore.Errorf(serpscore.EINVALID, "serpapi: API key required")
	}
	if strings.TrimSpace(query.Text) == "" {
		return nil, serpscore.Errorf(serpscore.EINVALID, "serpapi: query text required")
	}

	max := query.MaxResults
	if max <= 0 {
		max = serpPageSize
	}

	var collected []organicResult
	for start := 0; len(collected) < max; start += serpPageSize {
		batch, err := s.page(ctx, query, start)
		if err != nil {
			return nil, err
		}
		collected = append(collected, batch...)
		if len(batch) < serpPageSize {
			break
		}
	}
	if len(collected) > max {
		collected = collected[:max]
	}

	results := make([]serpscore.SearchResult, len(collected))
	for i, r := range collected {
		results[i] = serpscore.SearchResult{
			Position: i + 1,
			Title:    r.Title,
			URL:      r.Link,
			Snippet:  r.Snippet,
		}
	}
	return results, nil
}

// page requests one batch of organic results at the given start offset.
func (s *SerpAPIService) page(ctx context.Context, query serpscore.SearchQuery, start int) ([]organicResult, error) {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query.Text)
	params.Set("num", strconv.Itoa(serpPageSize))
	params.Set("start", strconv.Itoa(start))
	params.Set("api_key", s.apiKey)
	if query.Country != "" {
		params.Set("gl", strings.ToLower(query.Country))
	}
	if query.Language != "" {
		params.Set("hl", strings.ToLower(query.Language))
	}

	endpoint := s.baseURL + "/search.json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, serpscore.Errorf(serpscore.EINVALID, "serpapi: build request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, serpscore.Errorf(serpscore.ETRANSPORT, "serpapi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serpscore.Errorf(serpscore.EHTTPSTATUS, "serpapi: HTTP %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, serpscore.Errorf(serpscore.EINTERNAL, "serpapi: decode response: %v", err)
	}
	return decoded.OrganicResults, nil
}
