// Package readability provides a serpscore.Extractor backed by the
// go-shiori readability port.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/serpscore"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements serpscore.Extractor at compile time.
var _ serpscore.Extractor = (*Extractor)(nil)

// Extractor applies readability's content heuristics to isolate article
// text. Compared to the paragraph extractor it is better at stripping
// boilerplate on article pages and worse on sparse or unusual layouts.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract isolates the article content of the page. Pages readability
// cannot segment yield empty text rather than an error: zero text is a
// valid scoring input.
func (e *Extractor) Extract(page *serpscore.RawPage) (*serpscore.ExtractedText, error) {
	if strings.TrimSpace(page.Body) == "" {
		return emptyResult(page.URL), nil
	}

	pageURL, err := url.Parse(page.URL)
	if err != nil {
		pageURL = nil
	}

	article, err := readability.FromReader(strings.NewReader(page.Body), pageURL)
	if err != nil {
		return emptyResult(page.URL), nil
	}

	text := serpscore.NormalizeWhitespace(article.TextContent)

	return &serpscore.ExtractedText{
		URL:         page.URL,
		Title:       article.Title,
		Text:        text,
		ContentHTML: article.Content,
		CharLength:  len(text),
		WordCount:   serpscore.CountWords(text),
	}, nil
}

func emptyResult(url string) *serpscore.ExtractedText {
	return &serpscore.ExtractedText{URL: url}
}
