package serpscore

// Converter converts HTML to Markdown for the reader view.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., an ExtractedText's
	// ContentHTML). Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
