package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/serpscore"
	"github.com/fwojciec/serpscore/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "serpscore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Run("reads values from the file", func(t *testing.T) {
		path := writeConfig(t, `
search:
  engine: serpapi
  api_key: file-key
  country: dk
  language: da
  max_results: 25
fetch:
  timeout_seconds: 20
  retries: 1
  concurrency: 3
  per_domain_delay_ms: 500
score:
  language: da
  summary_words: 50
  extractor: trafilatura
logging:
  level: debug
  format: json
`)

		cfg, err := config.LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, config.EngineSerpAPI, cfg.Search.Engine)
		assert.Equal(t, "file-key", cfg.Search.APIKey)
		assert.Equal(t, "dk", cfg.Search.Country)
		assert.Equal(t, 25, cfg.Search.MaxResults)
		assert.Equal(t, 20, cfg.Fetch.TimeoutSeconds)
		assert.Equal(t, 1, cfg.Fetch.Retries)
		assert.Equal(t, 3, cfg.Fetch.Concurrency)
		assert.Equal(t, 500, cfg.Fetch.PerDomainDelayMS)
		assert.Equal(t, "da", cfg.Score.Language)
		assert.Equal(t, 50, cfg.Score.SummaryWords)
		assert.Equal(t, config.ExtractorTrafilatura, cfg.Score.Extractor)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("fills unset keys with defaults", func(t *testing.T) {
		path := writeConfig(t, `
search:
  max_results: 7
`)

		cfg, err := config.LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, config.EngineNews, cfg.Search.Engine)
		assert.Equal(t, 7, cfg.Search.MaxResults)
		assert.Equal(t, 10, cfg.Fetch.TimeoutSeconds)
		assert.Equal(t, 2, cfg.Fetch.Retries)
		assert.Equal(t, 5, cfg.Fetch.Concurrency)
		assert.Equal(t, "auto", cfg.Score.Language)
		assert.Equal(t, serpscore.DefaultSummaryWords, cfg.Score.SummaryWords)
		assert.Equal(t, config.ExtractorGoquery, cfg.Score.Extractor)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "text", cfg.Logging.Format)
	})

	t.Run("fails for a missing file", func(t *testing.T) {
		_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("environment variables override file values", func(t *testing.T) {
		t.Setenv("SERPSCORE_SEARCH_MAX_RESULTS", "42")

		path := writeConfig(t, `
search:
  max_results: 7
`)

		cfg, err := config.LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 42, cfg.Search.MaxResults)
	})

	t.Run("SERPSCORE_SEARCH_API_KEY overrides the file key", func(t *testing.T) {
		t.Setenv("SERPSCORE_SEARCH_API_KEY", "env-key")

		path := writeConfig(t, `
search:
  api_key: file-key
`)

		cfg, err := config.LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.Search.APIKey)
	})

	t.Run("SERPAPI_API_KEY is honored when nothing else sets a key", func(t *testing.T) {
		t.Setenv("SERPAPI_API_KEY", "vendor-key")

		path := writeConfig(t, `
search:
  engine: serpapi
`)

		cfg, err := config.LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "vendor-key", cfg.Search.APIKey)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *config.Config {
		return &config.Config{
			Search:  config.SearchConfig{Engine: config.EngineNews, Country: "us", Language: "en", MaxResults: 10},
			Fetch:   config.FetchConfig{TimeoutSeconds: 10, Retries: 2, Concurrency: 5},
			Score:   config.ScoreConfig{Language: "auto", SummaryWords: 100, Extractor: config.ExtractorGoquery},
			Logging: config.LoggingConfig{Level: "info", Format: "text"},
		}
	}

	t.Run("accepts a valid configuration", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects unknown engines", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Search.Engine = "bing"
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects serpapi without a key", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Search.Engine = config.EngineSerpAPI
		cfg.Search.APIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects out-of-range max results", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Search.MaxResults = 0
		assert.Error(t, cfg.Validate())
		cfg.Search.MaxResults = 101
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects unknown scoring languages", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Score.Language = "fr"
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects unknown extractors", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Score.Extractor = "regex"
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects unknown logging settings", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Logging.Level = "verbose"
		assert.Error(t, cfg.Validate())

		cfg = valid()
		cfg.Logging.Format = "xml"
		assert.Error(t, cfg.Validate())
	})
}

func TestFetchConfig_Derived(t *testing.T) {
	t.Parallel()

	t.Run("timeout as duration", func(t *testing.T) {
		t.Parallel()
		c := config.FetchConfig{TimeoutSeconds: 10}
		assert.Equal(t, 10*time.Second, c.Timeout())
	})

	t.Run("retry delays double per attempt", func(t *testing.T) {
		t.Parallel()
		c := config.FetchConfig{Retries: 2}
		assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, c.RetryDelays())

		c = config.FetchConfig{Retries: 0}
		assert.Empty(t, c.RetryDelays())
	})

	t.Run("per-domain delay converts to rps", func(t *testing.T) {
		t.Parallel()
		c := config.FetchConfig{PerDomainDelayMS: 500}
		assert.InDelta(t, 2.0, c.DomainRPS(), 1e-9)

		c = config.FetchConfig{PerDomainDelayMS: 0}
		assert.Zero(t, c.DomainRPS())
	})
}

func TestScoreConfig_ScoreLanguage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, serpscore.LanguageEnglish, config.ScoreConfig{Language: "en"}.ScoreLanguage())
	assert.Equal(t, serpscore.LanguageDanish, config.ScoreConfig{Language: "da"}.ScoreLanguage())
	assert.Equal(t, serpscore.LanguageAuto, config.ScoreConfig{Language: "auto"}.ScoreLanguage())
	assert.Equal(t, serpscore.LanguageAuto, config.ScoreConfig{Language: ""}.ScoreLanguage())
}
