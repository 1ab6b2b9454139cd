// Package goquery provides the canonical serpscore.Extractor: CSS-selector
// based paragraph extraction with structural noise removed.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serpscore"
)

// Ensure Extractor implements serpscore.Extractor at compile time.
var _ serpscore.Extractor = (*Extractor)(nil)

// noiseSelector matches the elements that never carry body text worth
// scoring.
const noiseSelector = "script, style, nav, header, footer"

// mainSelectors are tried in order to find a primary content region before
// falling back to all paragraphs in the document.
var mainSelectors = []string{"article", "main", "[role=main]"}

// Extractor extracts body text from page markup.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the page tolerantly and returns whitespace-normalized
// paragraph text. A page with no extractable paragraphs yields empty text
// with a nil error; malformed markup still parses best-effort.
func (e *Extractor) Extract(page *serpscore.RawPage) (*serpscore.ExtractedText, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Body))
	if err != nil {
		return nil, serpscore.Errorf(serpscore.EINVALID, "parse %s: %v", page.URL, err)
	}

	doc.Find(noiseSelector).Remove()

	var region *goquery.Selection
	for _, sel := range mainSelectors {
		if found := doc.Find(sel); found.Length() > 0 {
			region = found.First()
			break
		}
	}

	scope := doc.Selection
	if region != nil {
		scope = region
	}

	var text, contentHTML string
	if paragraphs := scope.Find("p"); paragraphs.Length() > 0 {
		text = joinParagraphs(paragraphs)
		contentHTML = outerHTML(paragraphs)
	} else if region != nil {
		// A content region without paragraph markup still counts; use
		// its full text.
		text = serpscore.NormalizeWhitespace(region.Text())
		contentHTML = outerHTML(region)
	}

	return &serpscore.ExtractedText{
		URL:         page.URL,
		Title:       pageTitle(doc),
		Text:        text,
		ContentHTML: contentHTML,
		CharLength:  len(text),
		WordCount:   serpscore.CountWords(text),
	}, nil
}

// joinParagraphs concatenates the trimmed text of each paragraph with
// single spaces, then normalizes the result.
func joinParagraphs(paragraphs *goquery.Selection) string {
	parts := make([]string, 0, paragraphs.Length())
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(p.Text()))
	})
	return serpscore.NormalizeWhitespace(strings.Join(parts, " "))
}

// outerHTML renders every node in the selection, concatenated.
func outerHTML(sel *goquery.Selection) string {
	var sb strings.Builder
	sel.Each(func(_ int, s *goquery.Selection) {
		if h, err := goquery.OuterHtml(s); err == nil {
			sb.WriteString(h)
		}
	})
	return sb.String()
}

// pageTitle prefers the title element, falling back to the first heading.
func pageTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
