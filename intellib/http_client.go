package intellib

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ErrCircuitBreakerOpened is returned when the shared outbound client
// rejects a request because too many recent ones have failed.
var ErrCircuitBreakerOpened = errors.New("circuit breaker is opened")

type httpClient struct {
	userAgent      string
	client         *http.Client
	rateLimiter    *rate.Limiter
	circuitBreaker *circuitBreaker
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if err := h.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	if !h.circuitBreaker.Allow() {
		return nil, ErrCircuitBreakerOpened
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		h.circuitBreaker.Observe(err)

		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		io.Copy(io.Discard, resp.Body) // nolint: errcheck
		resp.Body.Close()

		err := NewLookupError(ReasonStatus,
			fmt.Errorf("netloc has responded with %s", resp.Status))

		h.circuitBreaker.Observe(err)

		return nil, err
	}

	h.circuitBreaker.Observe(nil)

	return resp, nil
}

// NewHTTPClient wraps an HTTP client with a user agent, a rate limiter
// and a circuit breaker. All provider fetches of a service are expected
// to go through one instance of it.
//
// Please see https://pkg.go.dev/golang.org/x/time/rate for a meaning of
// the rate limiter parameters.
//
// The circuit breaker opens after circuitBreakerOpenThreshold failures
// happen within circuitBreakerResetFailuresTimeout; once opened it
// rejects requests for circuitBreakerHalfOpenTimeout and then allows a
// single probe which decides whether it closes again.
func NewHTTPClient(client *http.Client,
	userAgent string,
	rateLimiterInterval time.Duration,
	rateLimiterBurst int,
	circuitBreakerOpenThreshold uint32,
	circuitBreakerHalfOpenTimeout, circuitBreakerResetFailuresTimeout time.Duration) HTTPClient {
	return httpClient{
		userAgent:   userAgent,
		client:      client,
		rateLimiter: rate.NewLimiter(rate.Every(rateLimiterInterval), rateLimiterBurst),
		circuitBreaker: newCircuitBreaker(circuitBreakerOpenThreshold,
			circuitBreakerHalfOpenTimeout,
			circuitBreakerResetFailuresTimeout),
	}
}
