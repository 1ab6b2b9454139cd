package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/serpscore"
	"github.com/fwojciec/serpscore/analyze"
	"github.com/fwojciec/serpscore/config"
	"github.com/fwojciec/serpscore/gofeed"
	"github.com/fwojciec/serpscore/goquery"
	"github.com/fwojciec/serpscore/htmltomarkdown"
	serphttp "github.com/fwojciec/serpscore/http"
	"github.com/fwojciec/serpscore/lexicon"
	"github.com/fwojciec/serpscore/lingua"
	"github.com/fwojciec/serpscore/mem"
	"github.com/fwojciec/serpscore/readability"
	serpslog "github.com/fwojciec/serpscore/slog"
	"github.com/fwojciec/serpscore/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config loaded during Run, exposed for end-to-end testing.
	Config *config.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("serpscore"),
		kong.Description("Score search result pages for sentiment and content quality"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'serpscore --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Load configuration
	cfg, err := m.loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: check the config file or run without --config for defaults")
		return err
	}

	// Fold CLI engine overrides into the config before validation so a
	// serpapi override without an API key fails up front.
	switch cmd {
	case "search":
		if cli.Search.Engine != "" {
			cfg.Search.Engine = cli.Search.Engine
		}
	case "analyze":
		if cli.Analyze.Engine != "" {
			cfg.Search.Engine = cli.Analyze.Engine
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "Hint: set SERPSCORE_* environment variables or edit serpscore.yaml")
		return err
	}
	m.Config = cfg
	deps.Config = cfg

	// Logging decorators are wired only in debug mode so normal runs keep
	// stderr for progress lines.
	debug := cli.Verbose || cfg.Logging.Level == "debug"
	logger := slog.New(newLogHandler(cfg.Logging.Format, stderr, logLevel(cfg.Logging.Level, cli.Verbose)))

	// Wire command-specific dependencies based on command
	if cmd == "search" || cmd == "analyze" {
		deps.Searcher = newSearchService(cfg.Search)
		if debug {
			deps.Searcher = serpslog.NewLoggingSearchService(deps.Searcher, logger)
		}
	}

	if cmd == "analyze" || cmd == "inspect" {
		fetcher := serphttp.NewFetcher(serphttp.WithTimeout(cfg.Fetch.Timeout()))
		defer fetcher.Close()

		deps.Fetcher = fetcher
		if debug {
			deps.Fetcher = serpslog.NewLoggingFetcher(fetcher, logger)
		}
		deps.Extractor = newExtractor(cfg.Score.Extractor)
		deps.Scorer = lexicon.NewScorer()
		deps.Detector = lingua.NewDetector()
	}

	if cmd == "analyze" {
		var analyzer serpscore.Analyzer = &analyze.Analyzer{
			Fetcher:      deps.Fetcher,
			Extractor:    deps.Extractor,
			Scorer:       deps.Scorer,
			Detector:     deps.Detector,
			RetryDelays:  cfg.Fetch.RetryDelays(),
			SummaryWords: cfg.Score.SummaryWords,
		}
		if debug {
			analyzer = serpslog.NewLoggingAnalyzer(analyzer, logger)
		}

		deps.Runner = &analyze.Runner{
			Analyzer:    analyzer,
			Concurrency: cfg.Fetch.Concurrency,
		}
		if !cli.Analyze.NoCache {
			deps.Runner.Cache = mem.NewRecordCache()
		}
		if rps := cfg.Fetch.DomainRPS(); rps > 0 {
			deps.Runner.Limiter = analyze.NewDomainLimiter(rps)
		}
	}

	if cmd == "inspect" {
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

// loadConfig reads the config from an explicit path when given, otherwise
// from the default search path.
func (m *Main) loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// newSearchService picks the search engine implementation.
func newSearchService(cfg config.SearchConfig) serpscore.SearchService {
	if cfg.Engine == config.EngineSerpAPI {
		return serphttp.NewSerpAPIService(cfg.APIKey)
	}
	return gofeed.NewNewsService()
}

// newExtractor picks the extraction engine implementation.
func newExtractor(name string) serpscore.Extractor {
	switch name {
	case config.ExtractorReadability:
		return readability.NewExtractor()
	case config.ExtractorTrafilatura:
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

// newLogHandler builds the slog handler for the configured format.
func newLogHandler(format string, w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// logLevel maps the configured level name, with --verbose forcing debug.
func logLevel(name string, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
