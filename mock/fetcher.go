package mock

import (
	"context"

	"github.com/fwojciec/serpscore"
)

var _ serpscore.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of serpscore.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*serpscore.RawPage, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*serpscore.RawPage, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
