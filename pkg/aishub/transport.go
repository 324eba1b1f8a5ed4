package aishub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// DefaultEndpoint is the AISHub web service URL.
const DefaultEndpoint = "https://data.aishub.net/ws.php"

// Fetcher issues one web service call and returns the raw, possibly
// compressed payload. It is the only place the client performs I/O;
// timeouts and cancellation belong here, carried by the context.
type Fetcher interface {
	Fetch(ctx context.Context, params url.Values) ([]byte, error)
}

// HTTPFetcher is the production Fetcher: a tuned net/http client with
// optional circuit breaking and request metrics. Safe for concurrent use.
type HTTPFetcher struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
	breaker  *gobreaker.CircuitBreaker
	metrics  *Metrics
}

// FetcherOption configures an HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		f.client = client
	}
}

// WithFetcherLogger sets the logger used for transport debug logging.
func WithFetcherLogger(logger *zap.Logger) FetcherOption {
	return func(f *HTTPFetcher) {
		f.logger = logger
	}
}

// WithCircuitBreaker wraps every fetch in a circuit breaker so a failing
// provider is backed off instead of hammered.
func WithCircuitBreaker(settings gobreaker.Settings) FetcherOption {
	return func(f *HTTPFetcher) {
		f.breaker = gobreaker.NewCircuitBreaker(settings)
	}
}

// WithFetcherMetrics records request outcomes and latencies into m.
func WithFetcherMetrics(m *Metrics) FetcherOption {
	return func(f *HTTPFetcher) {
		f.metrics = m
	}
}

// NewHTTPFetcher creates a fetcher for the given web service URL. An empty
// endpoint is accepted here and rejected with URLRequired on the first
// Fetch.
func NewHTTPFetcher(endpoint string, opts ...FetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		endpoint: endpoint,
		client:   newHTTPClient(),
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// newHTTPClient builds an HTTP client with explicit connection timeouts.
// A context deadline can still override the total timeout.
func newHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   20,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
		},
	}
}

// Fetch performs the HTTP GET and returns the response body. Failures map
// to *TransportError: URLRequired when no usable URL exists, and
// ConnectionFailed for connectivity problems, non-OK statuses, and an open
// circuit.
func (f *HTTPFetcher) Fetch(ctx context.Context, params url.Values) ([]byte, error) {
	if f.endpoint == "" {
		return nil, NewTransportError(URLRequired, "", nil)
	}

	if f.breaker == nil {
		return f.fetch(ctx, params)
	}

	payload, err := f.breaker.Execute(func() (any, error) {
		return f.fetch(ctx, params)
	})
	if err != nil {
		var terr *TransportError
		if errors.As(err, &terr) {
			return nil, terr
		}
		// gobreaker's own rejections (open circuit, half-open overflow).
		return nil, NewTransportError(ConnectionFailed, f.endpoint, err)
	}

	return payload.([]byte), nil
}

func (f *HTTPFetcher) fetch(ctx context.Context, params url.Values) ([]byte, error) {
	requestURL := f.endpoint + "?" + params.Encode()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		f.record(outcomeTransport, start)
		return nil, NewTransportError(URLRequired, requestURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.record(outcomeTransport, start)
		return nil, NewTransportError(ConnectionFailed, requestURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.record(outcomeStatus, start)
		return nil, NewTransportError(ConnectionFailed, requestURL,
			fmt.Errorf("unexpected status %s", resp.Status))
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		f.record(outcomeTransport, start)
		return nil, NewTransportError(ConnectionFailed, requestURL, err)
	}

	f.record(outcomeSuccess, start)
	f.logger.Debug("fetched payload",
		zap.String("url", f.endpoint),
		zap.Int("bytes", len(payload)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return payload, nil
}

func (f *HTTPFetcher) record(outcome string, start time.Time) {
	if f.metrics != nil {
		f.metrics.RecordRequest(outcome, time.Since(start))
	}
}
