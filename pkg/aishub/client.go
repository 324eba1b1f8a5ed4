package aishub

import (
	"context"

	"go.uber.org/zap"
)

// Client retrieves and normalizes vessel records from the AISHub web
// service. One Client pairs an immutable Config with a Fetcher; it carries
// no per-call state, so a single value is safe for concurrent use.
type Client struct {
	config  Config
	fetcher Fetcher
	logger  *zap.Logger
}

// Option configures a Client using the functional options pattern.
type Option func(*Client)

// WithFetcher replaces the transport used for web service calls. Tests and
// embedders supply their own; the default is an HTTPFetcher against
// DefaultEndpoint.
func WithFetcher(fetcher Fetcher) Option {
	return func(c *Client) {
		c.fetcher = fetcher
	}
}

// WithLogger sets the logger for pipeline debug logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the given configuration. The configuration
// is validated once here; an invalid one is rejected before any call can be
// made.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.fetcher == nil {
		c.fetcher = NewHTTPFetcher(DefaultEndpoint, WithFetcherLogger(c.logger))
	}

	return c, nil
}

// GetVessel retrieves a single vessel by MMSI or IMO.
func (c *Client) GetVessel(ctx context.Context, query VesselQuery) (*Response, error) {
	return c.do(ctx, query)
}

// GetVesselsInArea retrieves every vessel inside a bounding box.
func (c *Client) GetVesselsInArea(ctx context.Context, query AreaQuery) (*Response, error) {
	return c.do(ctx, query)
}

// GetAllVessels retrieves every vessel visible to the account.
func (c *Client) GetAllVessels(ctx context.Context) (*Response, error) {
	return c.do(ctx, AllVesselsQuery{})
}

// do runs the pipeline for one call: build parameters, fetch, decompress,
// parse. Each stage's error is returned as-is; no stage retries and no
// partial Response is ever produced alongside an error.
func (c *Client) do(ctx context.Context, query Query) (*Response, error) {
	params, err := BuildParams(c.config, query)
	if err != nil {
		return nil, err
	}

	payload, err := c.fetcher.Fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("decompressing payload",
		zap.Stringer("compress", c.config.Compress),
		zap.Int("bytes", len(payload)),
	)
	text, err := Decompress(c.config.Compress, payload)
	if err != nil {
		return nil, err
	}

	response, err := Parse(c.config.Output, text)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("parsed response",
		zap.String("output", string(c.config.Output)),
		zap.Bool("provider_error", response.Header.HasError),
		zap.Int("records", len(response.Records)),
	)

	return response, nil
}
