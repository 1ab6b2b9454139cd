package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fwojciec/serpscore"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := serpscore.SearchQuery{
		Text:       strings.Join(c.Query, " "),
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

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tDOMAIN\tSNIPPET")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			r.Position, clip(r.Title, 60), serpscore.Domain(r.URL), clip(r.Snippet, 80))
	}
	return tw.Flush()
}
