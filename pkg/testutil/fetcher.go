// Package testutil provides test doubles and payload builders for testing
// code that consumes the aishub client.
package testutil

import (
	"context"
	"net/url"
	"sync"
)

// StaticFetcher is an aishub.Fetcher returning one canned payload (or
// error) for every call, recording the parameter sets it was called with.
// Safe for concurrent use.
type StaticFetcher struct {
	Payload []byte
	Err     error

	mu    sync.Mutex
	calls []url.Values
}

// Fetch returns the canned payload or error and records the call.
func (f *StaticFetcher) Fetch(_ context.Context, params url.Values) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	return f.Payload, nil
}

// Calls returns a copy of the parameter sets Fetch was called with, in
// call order.
func (f *StaticFetcher) Calls() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()

	calls := make([]url.Values, len(f.calls))
	copy(calls, f.calls)
	return calls
}

// FetcherFunc adapts a function to the aishub.Fetcher interface.
type FetcherFunc func(ctx context.Context, params url.Values) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, params url.Values) ([]byte, error) {
	return f(ctx, params)
}
