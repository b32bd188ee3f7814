package intellib

import (
	"context"
	"net/http"
	"time"
)

// Provider is a single third-party endpoint which can report the caller
// IP address and/or its geolocation. Implementations are expected to be
// cheap value types: the catalog rebuilds them for every request.
//
// Lookup must honor ctx cancellation and return either an Observation
// (possibly empty, if the endpoint answered but had nothing usable) or
// an error. Errors should be tagged with a reason via NewLookupError so
// the aggregator can classify them.
type Provider interface {
	Name() string
	Lookup(ctx context.Context) (Observation, error)
}

// HTTPClient is an interface for the HTTP client. A naked http.Client
// works but you probably want NewHTTPClient which adds rate limiting
// and a circuit breaker on top.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger is a logging interface of this library. We do not care about
// actual logging framework. Bring your own.
type Logger interface {
	LookupError(name string, err error)
	AggregationDone(success bool, attempted, failed int, elapsed time.Duration)
}

// Metrics receives aggregation outcomes. The default implementation
// discards everything; a Prometheus-backed one lives in the service
// binary.
type Metrics interface {
	ProviderSucceeded(name string)
	ProviderFailed(name, reason string)
	AggregationFinished(success bool, elapsed time.Duration)
}

type nopLogger struct{}

func (nopLogger) LookupError(string, error)                     {}
func (nopLogger) AggregationDone(bool, int, int, time.Duration) {}

type nopMetrics struct{}

func (nopMetrics) ProviderSucceeded(string)                {}
func (nopMetrics) ProviderFailed(string, string)           {}
func (nopMetrics) AggregationFinished(bool, time.Duration) {}
