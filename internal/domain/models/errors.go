package models

import "errors"

// Pipeline error taxonomy. Callers classify with errors.Is; adapters wrap
// these with provider context via fmt.Errorf("...: %w", ...).
var (
	// ErrTickerRequired rejects an empty or blank ticker before any
	// network call is made.
	ErrTickerRequired = errors.New("ticker is required")

	// ErrNotFound means the provider answered well-formed but has no
	// series for the ticker. Never retried.
	ErrNotFound = errors.New("ticker not found")

	// ErrRateLimited is an explicit throttle signal from the provider
	// (or the local outbound gate). The only retryable failure.
	ErrRateLimited = errors.New("provider rate limited")

	// ErrMalformed means the payload could not be decoded into a price
	// series. Never retried.
	ErrMalformed = errors.New("malformed provider payload")

	// ErrUpstreamExhausted is raised after the retry budget is spent on
	// rate-limit responses.
	ErrUpstreamExhausted = errors.New("upstream retries exhausted")

	// ErrNoData means normalization left zero usable points.
	ErrNoData = errors.New("no usable data points")

	// ErrDegenerateSeries means fewer than two distinct dates survived
	// normalization, so a slope is undefined.
	ErrDegenerateSeries = errors.New("series too short to fit a trend")
)
