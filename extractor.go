package serpscore

import "strings"

// ExtractedText holds the clean body text derived from a fetched page.
type ExtractedText struct {
	URL string

	// Title is the page title extracted from metadata, when available.
	Title string

	// Text is the whitespace-normalized, markup-free body text.
	// Empty text is a valid result for pages with no extractable
	// paragraphs, not an error.
	Text string

	// ContentHTML is the main content as clean HTML, kept for
	// reader-view conversion. May be empty.
	ContentHTML string

	// CharLength is len(Text); WordCount counts its whitespace-delimited
	// tokens.
	CharLength int
	WordCount  int
}

// Extractor derives clean body text from a fetched page, removing
// boilerplate (scripts, styles, navigation, header and footer blocks).
type Extractor interface {
	// Extract parses the page markup tolerantly and returns the body
	// text. Malformed markup must not fail the parse, and a page with
	// zero extractable paragraphs yields empty text with a nil error.
	Extract(page *RawPage) (*ExtractedText, error)
}

// NormalizeWhitespace collapses every whitespace run (including newlines)
// to a single space and trims the ends. Idempotent.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CountWords returns the number of whitespace-delimited tokens in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
