// Package gofeed provides a keyless serpscore.SearchService backed by the
// Google News RSS search endpoint.
package gofeed

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serpscore"
	"github.com/mmcdole/gofeed"
)

// DefaultFeedBaseURL is the Google News RSS search endpoint.
const DefaultFeedBaseURL = "https://news.google.com/rss/search"

// Ensure NewsService implements serpscore.SearchService at compile time.
var _ serpscore.SearchService = (*NewsService)(nil)

// NewsService maps RSS search feeds onto SERP results. No API key needed,
// which makes it the default engine. Results skew toward recent news
// coverage rather than general web pages.
type NewsService struct {
	parser  *gofeed.Parser
	baseURL string
}

// NewsOption configures a NewsService.
type NewsOption func(*NewsService)

// WithFeedBaseURL points the service at a different feed endpoint.
func WithFeedBaseURL(u string) NewsOption {
	return func(s *NewsService) {
		s.baseURL = u
	}
}

// NewNewsService creates a NewsService.
func NewNewsService(opts ...NewsOption) *NewsService {
	s := &NewsService{
		parser:  gofeed.NewParser(),
		baseURL: DefaultFeedBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search fetches the feed for the query and maps its items to results in
// feed order. MaxResults caps the count; zero means all items.
func (s *NewsService) Search(ctx context.Context, query serpscore.SearchQuery) ([]serpscore.SearchResult, error) {
	if strings.TrimSpace(query.Text) == "" {
		return nil, serpscore.Errorf(serpscore.EINVALID, "news: query text required")
	}

	feed, err := s.parser.ParseURLWithContext(s.feedURL(query), ctx)
	if err != nil {
		return nil, serpscore.Errorf(serpscore.ETRANSPORT, "news: fetch feed: %v", err)
	}

	max := query.MaxResults
	if max <= 0 || max > len(feed.Items) {
		max = len(feed.Items)
	}

	results := make([]serpscore.SearchResult, 0, max)
	for i, item := range feed.Items[:max] {
		results = append(results, serpscore.SearchResult{
			Position: i + 1,
			Title:    item.Title,
			URL:      item.Link,
			Snippet:  cleanSnippet(item.Description),
		})
	}
	return results, nil
}

// feedURL builds the RSS query URL with locale hints, for example
// ...?q=kaffe&hl=da&gl=DK&ceid=DK:da.
func (s *NewsService) feedURL(query serpscore.SearchQuery) string {
	hl := strings.ToLower(query.Language)
	if hl == "" {
		hl = "en"
	}
	gl := strings.ToUpper(query.Country)
	if gl == "" {
		gl = "US"
	}

	params := url.Values{}
	params.Set("q", query.Text)
	params.Set("hl", hl)
	params.Set("gl", gl)
	params.Set("ceid", fmt.Sprintf("%s:%s", gl, hl))
	return s.baseURL + "?" + params.Encode()
}

// cleanSnippet strips markup from a feed item description. Google News
// descriptions are HTML fragments wrapping the headline in links.
func cleanSnippet(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return serpscore.NormalizeWhitespace(fragment)
	}
	return serpscore.NormalizeWhitespace(doc.Text())
}
