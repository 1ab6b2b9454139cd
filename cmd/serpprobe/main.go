package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/serpscore"
	"github.com/fwojciec/serpscore/goquery"
	serphttp "github.com/fwojciec/serpscore/http"
	"github.com/fwojciec/serpscore/lexicon"
	"github.com/fwojciec/serpscore/lingua"
	"github.com/fwojciec/serpscore/readability"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("serpprobe"),
		kong.Description("Compare extraction engines on a single URL"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	language := serpscore.Language(cli.Language)
	switch language {
	case serpscore.LanguageAuto, serpscore.LanguageEnglish, serpscore.LanguageDanish:
	default:
		return fmt.Errorf("language must be auto, en or da, got %q", cli.Language)
	}

	fetcher := serphttp.NewFetcher(serphttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Fetcher: fetcher,
		Engines: []Engine{
			{Name: "goquery", Extractor: goquery.NewExtractor()},
			{Name: "readability", Extractor: readability.NewExtractor()},
			{Name: "trafilatura", Extractor: trafilatura.NewExtractor()},
		},
		Scorer:   lexicon.NewScorer(),
		Detector: lingua.NewDetector(),
	}

	cmd := &ProbeCmd{URL: cli.URL, Language: language}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL      string        `arg:"" required:"" help:"Page URL to probe"`
	Language string        `short:"l" default:"auto" help:"Scoring language: auto, en or da"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
}
