package main

import (
	"context"
	"io"

	"github.com/fwojciec/serpscore"
	"github.com/fwojciec/serpscore/analyze"
	"github.com/fwojciec/serpscore/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *config.Config
	Searcher  serpscore.SearchService
	Runner    *analyze.Runner
	Fetcher   serpscore.Fetcher
	Extractor serpscore.Extractor
	Scorer    serpscore.Scorer
	Detector  serpscore.LanguageDetector
	Converter serpscore.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to a config file (default: serpscore.yaml search path)" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging to stderr"`

	Search  SearchCmd  `cmd:"" help:"Fetch search results for a query"`
	Analyze AnalyzeCmd `cmd:"" help:"Search, fetch and score result pages"`
	Inspect InspectCmd `cmd:"" help:"Show what the scorer sees for one URL"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  []string `arg:"" help:"Search phrase"`
	Limit  int      `short:"n" help:"Maximum results (overrides config)"`
	Engine string   `help:"Search engine: news or serpapi (overrides config)"`
	JSON   bool     `help:"Print results as JSON"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Query    []string `arg:"" help:"Search phrase"`
	Limit    int      `short:"n" help:"Maximum results (overrides config)"`
	Engine   string   `help:"Search engine: news or serpapi (overrides config)"`
	Language string   `short:"l" help:"Scoring language: auto, en or da (overrides config)"`
	JSON     bool     `help:"Print the run manifest as JSON instead of a table"`
	Out      string   `help:"Write the run manifest as JSON to a file" type:"path"`
	CSV      string   `help:"Write records as CSV to a file" type:"path"`
	NoCache  bool     `help:"Re-fetch URLs seen earlier in the session"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	URL      string `arg:"" help:"Page URL to inspect"`
	Language string `short:"l" help:"Scoring language: auto, en or da (overrides config)"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}

// clip shortens a string for table display, keeping the beginning.
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// resolveLanguage applies a CLI language override on top of the configured
// scoring language. The empty string means no override.
func resolveLanguage(configured serpscore.Language, override string) (serpscore.Language, error) {
	if override == "" {
		return configured, nil
	}
	switch l := serpscore.Language(override); l {
	case serpscore.LanguageAuto, serpscore.LanguageEnglish, serpscore.LanguageDanish:
		return l, nil
	default:
		return "", serpscore.Errorf(serpscore.EINVALID, "language must be auto, en or da, got %q", override)
	}
}
