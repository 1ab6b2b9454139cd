package analyze

import (
	"context"
	"time"

	"github.com/fwojciec/serpscore"
)

// DefaultRetryDelays returns the waits between fetch attempts: 1s then 2s,
// three attempts in total.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// retryable reports whether a fetch failure is worth another attempt.
// HTTP error statuses are not: a 403 or 404 will not change on retry, and
// hammering a server that said no invites blocking.
func retryable(err error) bool {
	switch serpscore.ErrorCode(err) {
	case serpscore.ETIMEOUT, serpscore.ETRANSPORT:
		return true
	}
	return false
}

// FetchWithRetryDelays fetches a URL, retrying timeout and transport
// failures after each configured delay. At most len(delays)+1 attempts;
// invalid URLs and HTTP error statuses fail on the first attempt. The
// returned error is always the most recent fetch failure, including when
// the context is canceled mid-backoff.
func FetchWithRetryDelays(ctx context.Context, url string, fetcher serpscore.Fetcher, delays []time.Duration) (*serpscore.RawPage, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, lastErr
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
