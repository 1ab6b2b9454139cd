package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fwojciec/serpscore"
	"github.com/fwojciec/serpscore/analyze"
)

// Dependencies holds the services the probe runs against.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Fetcher  serpscore.Fetcher
	Engines  []Engine
	Scorer   serpscore.Scorer
	Detector serpscore.LanguageDetector
}

// Engine pairs an extraction engine with its display name.
type Engine struct {
	Name      string
	Extractor serpscore.Extractor
}

// ProbeCmd fetches one URL and reports what each extraction engine sees.
type ProbeCmd struct {
	URL      string
	Language serpscore.Language
}

// Run executes the probe. The page is fetched once and handed to every
// engine; an engine failure marks its row and does not abort the others.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	page, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpscore.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Fetched %s (%s)\n\n", page.URL, analyze.FormatBytes(len(page.Body)))

	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENGINE\tTITLE\tWORDS\tCHARS\tCOMPOUND\tCOMBINED\tCATEGORY")
	for _, engine := range deps.Engines {
		extracted, err := engine.Extractor.Extract(page)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "%s: %s\n", engine.Name, serpscore.ErrorMessage(err))
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t-\n", engine.Name)
			continue
		}

		scores, err := deps.Scorer.Score(extracted.Text, c.resolveLanguage(deps, extracted.Text))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "%s: %s\n", engine.Name, serpscore.ErrorMessage(err))
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t-\n", engine.Name)
			continue
		}

		combined := serpscore.CombineScores(scores.Sentiment.Compound, scores.Lexical.KeywordRatio, scores.Quality.QualityScore)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.3f\t%.3f\t%s\n",
			engine.Name, clipTitle(extracted.Title), extracted.WordCount, extracted.CharLength,
			scores.Sentiment.Compound, combined, serpscore.Categorize(combined))
	}
	return tw.Flush()
}

// resolveLanguage maps auto onto the detector's guess, falling back to
// English. Engines can disagree on the extracted text, so detection runs
// per engine.
func (c *ProbeCmd) resolveLanguage(deps *Dependencies, text string) serpscore.Language {
	if c.Language != serpscore.LanguageAuto && c.Language != "" {
		return c.Language
	}
	if deps.Detector != nil {
		if detected, ok := deps.Detector.Detect(text); ok {
			return detected
		}
	}
	return serpscore.LanguageEnglish
}

// clipTitle shortens a title for the table, marking missing ones.
func clipTitle(title string) string {
	if title == "" {
		return "(none)"
	}
	r := []rune(title)
	if len(r) > 40 {
		return string(r[:37]) + "..."
	}
	return title
}
