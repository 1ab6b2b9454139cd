// Package config handles configuration loading for serpscore. It supports
// YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/serpscore"
	"github.com/spf13/viper"
)

// Engine names accepted by search.engine.
const (
	EngineNews    = "news"
	EngineSerpAPI = "serpapi"
)

// Extractor names accepted by score.extractor.
const (
	ExtractorGoquery     = "goquery"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// Config represents the complete application configuration.
type Config struct {
	Search  SearchConfig  `mapstructure:"search"  yaml:"search"`
	Fetch   FetchConfig   `mapstructure:"fetch"   yaml:"fetch"`
	Score   ScoreConfig   `mapstructure:"score"   yaml:"score"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// SearchConfig holds search acquisition settings.
type SearchConfig struct {
	Engine     string `mapstructure:"engine"      yaml:"engine"` // "news" or "serpapi"
	APIKey     string `mapstructure:"api_key"     yaml:"api_key"`
	Country    string `mapstructure:"country"     yaml:"country"`
	Language   string `mapstructure:"language"    yaml:"language"`
	MaxResults int    `mapstructure:"max_results" yaml:"max_results"`
}

// FetchConfig holds page fetching settings.
type FetchConfig struct {
	TimeoutSeconds   int `mapstructure:"timeout_seconds"     yaml:"timeout_seconds"`
	Retries          int `mapstructure:"retries"             yaml:"retries"`
	Concurrency      int `mapstructure:"concurrency"         yaml:"concurrency"`
	PerDomainDelayMS int `mapstructure:"per_domain_delay_ms" yaml:"per_domain_delay_ms"`
}

// ScoreConfig holds scoring settings.
type ScoreConfig struct {
	Language     string `mapstructure:"language"      yaml:"language"` // "auto", "en", "da"
	SummaryWords int    `mapstructure:"summary_words" yaml:"summary_words"`
	Extractor    string `mapstructure:"extractor"     yaml:"extractor"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./serpscore.yaml (working directory)
//  2. ~/.serpscore/serpscore.yaml
//  3. /etc/serpscore/serpscore.yaml
//
// Environment variables override config file values, in the form
// SERPSCORE_<SECTION>_<KEY>, e.g. SERPSCORE_SEARCH_MAX_RESULTS.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("serpscore")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".serpscore"))
	v.AddConfigPath("/etc/serpscore")

	v.SetEnvPrefix("SERPSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine: defaults plus env vars apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("SERPSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("search.engine", EngineNews)
	v.SetDefault("search.country", "us")
	v.SetDefault("search.language", "en")
	v.SetDefault("search.max_results", 10)

	v.SetDefault("fetch.timeout_seconds", 10)
	v.SetDefault("fetch.retries", 2)
	v.SetDefault("fetch.concurrency", 5)
	v.SetDefault("fetch.per_domain_delay_ms", 0) // politeness is opt-in

	v.SetDefault("score.language", "auto")
	v.SetDefault("score.summary_words", serpscore.DefaultSummaryWords)
	v.SetDefault("score.extractor", ExtractorGoquery)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from environment
// variables. SERPAPI_API_KEY is the vendor's own variable name and is
// honored as a fallback.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("SERPSCORE_SEARCH_API_KEY"); key != "" {
		cfg.Search.APIKey = key
	} else if key := os.Getenv("SERPAPI_API_KEY"); key != "" && cfg.Search.APIKey == "" {
		cfg.Search.APIKey = key
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// Validate checks the configuration for values the pipeline cannot run
// with.
func (c *Config) Validate() error {
	switch c.Search.Engine {
	case EngineNews, EngineSerpAPI:
	default:
		return fmt.Errorf("search.engine must be %q or %q, got %q", EngineNews, EngineSerpAPI, c.Search.Engine)
	}
	if c.Search.Engine == EngineSerpAPI && c.Search.APIKey == "" {
		return fmt.Errorf("search.engine %q requires search.api_key or SERPAPI_API_KEY", EngineSerpAPI)
	}
	if c.Search.MaxResults < 1 || c.Search.MaxResults > 100 {
		return fmt.Errorf("search.max_results must be between 1 and 100, got %d", c.Search.MaxResults)
	}
	if c.Fetch.TimeoutSeconds < 0 {
		return fmt.Errorf("fetch.timeout_seconds must not be negative, got %d", c.Fetch.TimeoutSeconds)
	}
	if c.Fetch.Retries < 0 || c.Fetch.Retries > 10 {
		return fmt.Errorf("fetch.retries must be between 0 and 10, got %d", c.Fetch.Retries)
	}
	if c.Fetch.Concurrency < 1 {
		return fmt.Errorf("fetch.concurrency must be at least 1, got %d", c.Fetch.Concurrency)
	}
	if c.Fetch.PerDomainDelayMS < 0 {
		return fmt.Errorf("fetch.per_domain_delay_ms must not be negative, got %d", c.Fetch.PerDomainDelayMS)
	}
	switch c.Score.Language {
	case "auto", string(serpscore.LanguageEnglish), string(serpscore.LanguageDanish):
	default:
		return fmt.Errorf("score.language must be auto, en or da, got %q", c.Score.Language)
	}
	if c.Score.SummaryWords < 1 {
		return fmt.Errorf("score.summary_words must be at least 1, got %d", c.Score.SummaryWords)
	}
	switch c.Score.Extractor {
	case ExtractorGoquery, ExtractorReadability, ExtractorTrafilatura:
	default:
		return fmt.Errorf("score.extractor must be %q, %q or %q, got %q",
			ExtractorGoquery, ExtractorReadability, ExtractorTrafilatura, c.Score.Extractor)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// Timeout returns the per-request fetch budget as a duration.
func (c FetchConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryDelays derives the waits between fetch attempts: 1s doubling per
// retry, so two retries wait 1s then 2s.
func (c FetchConfig) RetryDelays() []time.Duration {
	delays := make([]time.Duration, 0, c.Retries)
	for i := 0; i < c.Retries; i++ {
		delays = append(delays, time.Second<<i)
	}
	return delays
}

// DomainRPS converts the per-domain delay into a requests-per-second
// budget. Zero means rate limiting is disabled.
func (c FetchConfig) DomainRPS() float64 {
	if c.PerDomainDelayMS <= 0 {
		return 0
	}
	return 1000.0 / float64(c.PerDomainDelayMS)
}

// ScoreLanguage maps the configured language onto the scoring type.
func (c ScoreConfig) ScoreLanguage() serpscore.Language {
	switch c.Language {
	case string(serpscore.LanguageEnglish):
		return serpscore.LanguageEnglish
	case string(serpscore.LanguageDanish):
		return serpscore.LanguageDanish
	default:
		return serpscore.LanguageAuto
	}
}
