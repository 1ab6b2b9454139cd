package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/serpscore"
	main "github.com/fwojciec/serpscore/cmd/serpscore"
	"github.com/fwojciec/serpscore/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	sampleResults := []serpscore.SearchResult{
		{Position: 1, Title: "Wind Farms Expand", URL: "https://news.example.com/wind", Snippet: "Offshore capacity doubled this year."},
		{Position: 2, Title: "Solar Output Dips", URL: "https://other.example.org/solar", Snippet: "Cloudy season hits generation."},
	}

	t.Run("prints a result table", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.SearchService{
			SearchFn: func(_ context.Context, query serpscore.SearchQuery) ([]serpscore.SearchResult, error) {
				assert.Equal(t, "wind energy denmark", query.Text)
				return sampleResults, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      testContext(),
			Stdout:   stdout,
			Stderr:   stderr,
			Config:   testConfig(),
			Searcher: searcher,
		}

		cmd := &main.SearchCmd{Query: []string{"wind", "energy", "denmark"}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "TITLE")
		assert.Contains(t, out, "Wind Farms Expand")
		assert.Contains(t, out, "news.example.com")
		assert.Contains(t, out, "Cloudy season")
		assert.Empty(t, stderr.String())
	})

	t.Run("uses config defaults for limit and locale", func(t *testing.T) {
		t.Parallel()

		var got serpscore.SearchQuery
		searcher := &mock.SearchService{
			SearchFn: func(_ context.Context, query serpscore.SearchQuery) ([]serpscore.SearchResult, error) {
				got = query
				return sampleResults, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      testContext(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Config:   testConfig(),
			Searcher: searcher,
		}

		cmd := &main.SearchCmd{Query: []string{"coffee"}}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, 10, got.MaxResults)
		assert.Equal(t, "en", got.Language)
		assert.Equal(t, "us", got.Country)
	})

	t.Run("overrides result limit with --limit", func(t *testing.T) {
		t.Parallel()

		var got serpscore.SearchQuery
		searcher := &mock.SearchService{
			SearchFn: func(_ context.Context, query serpscore.SearchQuery) ([]serpscore.SearchResult, error) {
				got = query
				return sampleResults, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:      testContext(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Config:   testConfig(),
			Searcher: searcher,
		}

		cmd := &main.SearchCmd{Query: []string{"coffee"}, Limit: 3}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, 3, got.MaxResults)
	})

	t.Run("renders JSON with --json", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.SearchService{
			SearchFn: func(_ context.Context, _ serpscore.SearchQuery) ([]serpscore.SearchResult, error) {
				return sampleResults, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      testContext(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Config:   testConfig(),
			Searcher: searcher,
		}

		cmd := &main.SearchCmd{Query: []string{"coffee"}, JSON: true}

		require.NoError(t, cmd.Run(deps))

		var decoded []serpscore.SearchResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "Wind Farms Expand", decoded[0].Title)
		assert.NotContains(t, stdout.String(), "TITLE")
	})

	t.Run("prints a message when there are no results", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.SearchService{
			SearchFn: func(_ context.Context, _ serpscore.SearchQuery) ([]serpscore.SearchResult, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      testContext(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Config:   testConfig(),
			Searcher: searcher,
		}

		cmd := &main.SearchCmd{Query: []string{"obscure", "phrase"}}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No results.")
	})

	t.Run("reports search failures to stderr", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.SearchService{
			SearchFn: func(_ context.Context, _ serpscore.SearchQuery) ([]serpscore.SearchResult, error) {
				return nil, serpscore.Errorf(serpscore.EHTTPSTATUS, "serpapi: HTTP 500")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      testContext(),
			Stdout:   stdout,
			Stderr:   stderr,
			Config:   testConfig(),
			Searcher: searcher,
		}

		cmd := &main.SearchCmd{Query: []string{"coffee"}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: serpapi: HTTP 500")
		assert.Empty(t, stdout.String())
	})
}
