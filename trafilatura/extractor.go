// Package trafilatura provides a serpscore.Extractor backed by the
// go-trafilatura content extraction library.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/serpscore"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements serpscore.Extractor at compile time.
var _ serpscore.Extractor = (*Extractor)(nil)

// Extractor applies trafilatura's segmentation to isolate article text.
// The strictest of the extraction engines: best precision on news and
// article pages, at the cost of returning nothing on sparse layouts.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract isolates the main content of the page. Pages trafilatura cannot
// segment yield empty text rather than an error: zero text is a valid
// scoring input.
func (e *Extractor) Extract(page *serpscore.RawPage) (*serpscore.ExtractedText, error) {
	if strings.TrimSpace(page.Body) == "" {
		return emptyResult(page.URL), nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if pageURL, err := url.Parse(page.URL); err == nil {
		opts.OriginalURL = pageURL
	}

	result, err := trafilatura.Extract(strings.NewReader(page.Body), opts)
	if err != nil || result == nil {
		return emptyResult(page.URL), nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		if rendered, err := renderNode(result.ContentNode); err == nil {
			contentHTML = rendered
		}
	}

	text := serpscore.NormalizeWhitespace(result.ContentText)

	return &serpscore.ExtractedText{
		URL:         page.URL,
		Title:       result.Metadata.Title,
		Text:        text,
		ContentHTML: contentHTML,
		CharLength:  len(text),
		WordCount:   serpscore.CountWords(text),
	}, nil
}

func emptyResult(url string) *serpscore.ExtractedText {
	return &serpscore.ExtractedText{URL: url}
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
