package readability_test

import (
	"testing"

	"github.com/fwojciec/serpscore"
	"github.com/fwojciec/serpscore/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, body string) *serpscore.ExtractedText {
	t.Helper()
	ext := readability.NewExtractor()
	result, err := ext.Extract(&serpscore.RawPage{URL: "https://example.com/article", Body: body})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestExtractor_EmptyInputYieldsEmptyText(t *testing.T) {
	t.Parallel()

	result := extract(t, "")

	assert.Empty(t, result.Text)
	assert.Zero(t, result.WordCount)
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>Content paragraph with enough words to keep readability interested.</p></article></body>
</html>`

	result := extract(t, html)

	assert.Equal(t, "Page Title", result.Title)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	result := extract(t, html)

	assert.NotContains(t, result.Text, "Home Nav Link")
	assert.NotContains(t, result.Text, "About Nav Link")
	assert.Contains(t, result.Text, "main article content")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>This is the main article content that should be preserved in the output.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	result := extract(t, html)

	assert.NotContains(t, result.Text, "Footer copyright text")
}

func TestExtractor_NormalizesWhitespace(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>First paragraph
spread over
several lines.</p>
<p>Second   paragraph with   runs of spaces inside it.</p>
</article>
</body>
</html>`

	result := extract(t, html)

	assert.NotContains(t, result.Text, "\n")
	assert.NotContains(t, result.Text, "  ")
}

func TestExtractor_CountsWordsAndCharacters(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>This is the important article paragraph text that must be kept.</p></article>
</body>
</html>`

	result := extract(t, html)

	assert.Contains(t, result.Text, "important article paragraph text")
	assert.Equal(t, serpscore.CountWords(result.Text), result.WordCount)
	assert.Equal(t, len(result.Text), result.CharLength)
}

func TestExtractor_ContentHTMLKeepsStructure(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Main Heading</h1>
<p>Some intro text here.</p>
<ul>
<li>First item</li>
<li>Second item</li>
</ul>
</article>
</body>
</html>`

	result := extract(t, html)

	assert.Contains(t, result.ContentHTML, "Main Heading")
	assert.Contains(t, result.ContentHTML, "<ul")
	assert.Contains(t, result.ContentHTML, "<li")
}

func TestExtractor_SparsePageYieldsEmptyTextNotError(t *testing.T) {
	t.Parallel()

	result := extract(t, "<html><body></body></html>")

	assert.Empty(t, result.Text)
	assert.Zero(t, result.WordCount)
}
