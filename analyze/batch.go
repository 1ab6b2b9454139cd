package analyze

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fwojciec/serpscore"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the worker pool for batch analysis.
const DefaultConcurrency = 5

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Record    *serpscore.AnalysisRecord
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. It is invoked
// from the collecting goroutine only, so implementations need no locking.
type ProgressFunc func(event ProgressEvent)

// Runner analyzes a batch of search results under a bounded worker pool.
type Runner struct {
	Analyzer serpscore.Analyzer

	// Cache, when set, short-circuits repeated URLs within a session.
	Cache serpscore.RecordCache

	// Limiter, when set, spaces out requests per domain.
	Limiter *DomainLimiter

	// Concurrency bounds the pool. DefaultConcurrency when <= 0.
	Concurrency int

	// Progress receives events as analyses complete. Optional.
	Progress ProgressFunc
}

// runResult pairs a record with its input position.
type runResult struct {
	position int
	record   *serpscore.AnalysisRecord
}

// Run analyzes every result's URL and returns records in input order, one
// per input regardless of individual failures. Completion order does not
// matter: workers report positions and the slice is assembled by index.
// An empty batch returns nil without emitting progress events.
func (r *Runner) Run(ctx context.Context, results []serpscore.SearchResult, language serpscore.Language) []*serpscore.AnalysisRecord {
	total := len(results)
	if total == 0 {
		return nil
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	if r.Progress != nil {
		r.Progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan runResult, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, result := range results {
			g.Go(func() error {
				resultCh <- runResult{
					position: i,
					record:   r.analyzeOne(gctx, result.URL, language),
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	records := make([]*serpscore.AnalysisRecord, total)
	for result := range resultCh {
		records[result.position] = result.record
		done := int(completed.Add(1))

		if r.Progress != nil {
			eventType := ProgressCompleted
			if !result.record.Success {
				eventType = ProgressFailed
			}
			r.Progress(ProgressEvent{
				Type:      eventType,
				Completed: done,
				Total:     total,
				URL:       result.record.URL,
				Record:    result.record,
			})
		}
	}

	if r.Progress != nil {
		r.Progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return records
}

// analyzeOne resolves one URL through the cache, the rate limiter and the
// analyzer. Cancellation still yields a failure record so the batch keeps
// its one-record-per-input shape.
func (r *Runner) analyzeOne(ctx context.Context, url string, language serpscore.Language) *serpscore.AnalysisRecord {
	if r.Cache != nil {
		if record, ok := r.Cache.Get(url); ok {
			return record
		}
	}

	if err := ctx.Err(); err != nil {
		return serpscore.FailureRecord(url, serpscore.Errorf(serpscore.ETRANSPORT, "batch canceled before fetch: %v", err))
	}

	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, serpscore.Domain(url)); err != nil {
			return serpscore.FailureRecord(url, serpscore.Errorf(serpscore.ETRANSPORT, "batch canceled while rate limited: %v", err))
		}
	}

	record := r.Analyzer.Analyze(ctx, url, language)

	if r.Cache != nil {
		r.Cache.Set(url, record)
	}
	return record
}

// TruncateURL shortens a URL for display, keeping the end which is more
// informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats a byte count in human-readable form.
func FormatBytes(bytes int) string {
	const (
		kb = 1024
		mb = kb * 1024
	)
	switch {
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
