package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fwojciec/serpscore"
	"github.com/fwojciec/serpscore/analyze"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	language, err := resolveLanguage(deps.Config.Score.ScoreLanguage(), c.Language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpscore.ErrorMessage(err))
		return err
	}

	queryText := strings.Join(c.Query, " ")
	query := serpscore.SearchQuery{
		Text:       queryText,
		MaxResults: deps.Config.Search.MaxResults,
		Language:   deps.Config.Search.Language,
		Country:    deps.Config.Search.Country,
	}
	if c.Limit > 0 {
		query.MaxResults = c.Limit
	}

	results, err := deps.Searcher.Search(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", serpscore.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	// Progress goes to stderr so stdout stays clean for tables and JSON.
	deps.Runner.Progress = func(event analyze.ProgressEvent) {
		switch event.Type {
		case analyze.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Analyzing %d results\n", event.Total)
		case analyze.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "\r[%d/%d] %s", event.Completed, event.Total, analyze.TruncateURL(event.URL, 60))
		case analyze.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "\r[%d/%d] skip %s: %s\n", event.Completed, event.Total, analyze.TruncateURL(event.URL, 60), event.Record.Summary)
		case analyze.ProgressFinished:
			fmt.Fprintln(deps.Stderr)
		}
	}

	records := deps.Runner.Run(deps.Ctx, results, language)
	manifest := serpscore.NewRunManifest(queryText, deps.Config.Search.Engine, language, records)

	if c.Out != "" {
		if err := writeManifestFile(c.Out, manifest); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", c.Out)
	}
	if c.CSV != "" {
		if err := writeCSVFile(c.CSV, records); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", c.CSV)
	}

	if c.JSON {
		return serpscore.WriteJSON(deps.Stdout, manifest)
	}

	printRecordTable(deps, records)
	printTopSummaries(deps, records)
	return nil
}

// printRecordTable renders one row per record in input (rank) order.
func printRecordTable(deps *Dependencies, records []*serpscore.AnalysisRecord) {
	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDOMAIN\tCATEGORY\tCOMBINED\tCOMPOUND\tWORDS\tOK")
	for i, r := range records {
		ok := "yes"
		if !r.Success {
			ok = "no"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.3f\t%.3f\t%d\t%s\n",
			i+1, r.Domain, serpscore.Categorize(r.CombinedScore), r.CombinedScore,
			r.Sentiment.Compound, r.WordCount, ok)
	}
	_ = tw.Flush()
}

// topSummaryCount bounds how many result summaries print under the table.
const topSummaryCount = 3

// printTopSummaries prints the highest-scoring successful records' summaries.
func printTopSummaries(deps *Dependencies, records []*serpscore.AnalysisRecord) {
	top := make([]*serpscore.AnalysisRecord, 0, len(records))
	for _, r := range records {
		if r.Success && r.Summary != "" {
			top = append(top, r)
		}
	}
	if len(top) == 0 {
		return
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].CombinedScore > top[j].CombinedScore
	})
	if len(top) > topSummaryCount {
		top = top[:topSummaryCount]
	}

	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, "Top results:")
	for _, r := range top {
		fmt.Fprintf(deps.Stdout, "  %s (%.3f, %s)\n    %s\n", r.Domain, r.CombinedScore, serpscore.Categorize(r.CombinedScore), r.Summary)
	}
}

// writeManifestFile writes the run manifest as JSON to path.
func writeManifestFile(path string, manifest *serpscore.RunManifest) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := serpscore.WriteJSON(f, manifest); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writeCSVFile writes flat record rows as CSV to path.
func writeCSVFile(path string, records []*serpscore.AnalysisRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := serpscore.WriteCSV(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
