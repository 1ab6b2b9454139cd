package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/serpscore"
	"github.com/fwojciec/serpscore/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements serpscore.Converter at compile time.
var _ serpscore.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "### Section")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Visit <a href="https://example.com">Example</a> for more.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>First</li><li>Second</li></ul><ol><li>One</li><li>Two</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "1. One")
		assert.Contains(t, md, "2. Two")
	})

	t.Run("converts emphasis", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><strong>Bold</strong> and <em>italic</em> text.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts blockquotes", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<blockquote><p>This is a quote.</p></blockquote>`)

		require.NoError(t, err)
		assert.Contains(t, md, "> This is a quote.")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Region</th><th>Growth</th></tr></thead>
<tbody><tr><td>Europe</td><td>4.2%</td></tr><tr><td>Americas</td><td>3.1%</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Region")
		assert.Contains(t, md, "Europe")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, serpscore.EINVALID, serpscore.ErrorCode(err))
	})

	t.Run("handles a full article fragment", func(t *testing.T) {
		t.Parallel()

		html := `<article>
<h1>Coffee Prices Hit Record High</h1>
<p>Prices rose for the <strong>third</strong> consecutive month.</p>
<h2>Regional Impact</h2>
<p>Analysts point to supply constraints in growing regions.</p>
<ul>
<li>Harvest delays</li>
<li>Shipping costs</li>
</ul>
<blockquote><p>The market has rarely been this tight.</p></blockquote>
</article>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Coffee Prices Hit Record High")
		assert.Contains(t, md, "## Regional Impact")
		assert.Contains(t, md, "**third**")
		assert.Contains(t, md, "- Harvest delays")
		assert.Contains(t, md, "> The market has rarely been this tight.")
	})
}
