package intellib

import (
	"sync"
	"time"
)

const (
	circuitStateClosed = iota
	circuitStateOpened
	circuitStateHalfOpened
)

// circuitBreaker guards the outbound HTTP client: after openThreshold
// failures within resetFailuresTimeout it opens and rejects requests,
// letting a single probe through once halfOpenTimeout has passed.
type circuitBreaker struct {
	mutex sync.Mutex

	state         int
	failuresCount uint32
	firstFailure  time.Time
	openedAt      time.Time
	probeInFlight bool

	openThreshold        uint32
	halfOpenTimeout      time.Duration
	resetFailuresTimeout time.Duration
}

// Allow reports whether a request may proceed right now.
func (c *circuitBreaker) Allow() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	switch c.state {
	case circuitStateClosed:
		return true
	case circuitStateOpened:
		if time.Since(c.openedAt) < c.halfOpenTimeout {
			return false
		}

		c.state = circuitStateHalfOpened
		c.probeInFlight = true

		return true
	default:
		if c.probeInFlight {
			return false
		}

		c.probeInFlight = true

		return true
	}
}

// Observe records the outcome of a request previously admitted by
// Allow.
func (c *circuitBreaker) Observe(err error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.state == circuitStateHalfOpened {
		c.probeInFlight = false

		if err != nil {
			c.open()
		} else {
			c.close()
		}

		return
	}

	if err == nil {
		return
	}

	now := time.Now()

	if c.failuresCount == 0 || now.Sub(c.firstFailure) > c.resetFailuresTimeout {
		c.failuresCount = 0
		c.firstFailure = now
	}

	c.failuresCount++

	if c.state == circuitStateClosed && c.failuresCount > c.openThreshold {
		c.open()
	}
}

func (c *circuitBreaker) open() {
	c.state = circuitStateOpened
	c.openedAt = time.Now()
	c.failuresCount = 0
}

func (c *circuitBreaker) close() {
	c.state = circuitStateClosed
	c.failuresCount = 0
}

func newCircuitBreaker(openThreshold uint32,
	halfOpenTimeout, resetFailuresTimeout time.Duration) *circuitBreaker {
	return &circuitBreaker{
		openThreshold:        openThreshold,
		halfOpenTimeout:      halfOpenTimeout,
		resetFailuresTimeout: resetFailuresTimeout,
	}
}
