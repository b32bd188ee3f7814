package intellib

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// Default tunables of the aggregator. All of them can be overridden via
// AggregatorOpts.
const (
	DefaultProviderTimeout = 3500 * time.Millisecond
	DefaultOverallTimeout  = 8 * time.Second
	DefaultConcurrency     = 5

	// a process-wide cap on in-flight fetches across all requests;
	// per-request concurrency is enforced by the dispatch loop.
	workerPoolSize       = 4096
	workerPoolExpireTime = time.Minute
)

// AggregatorOpts configures an Aggregator. Zero values are replaced
// with the defaults above; nil Logger and Metrics are replaced with
// implementations which do nothing.
type AggregatorOpts struct {
	Logger          Logger
	Metrics         Metrics
	ProviderTimeout time.Duration
	OverallTimeout  time.Duration
	Concurrency     int
}

// Aggregator fans a request out to a list of providers under a shared
// deadline and folds their observations into a single record.
//
// Providers are launched in catalog order with no more than Concurrency
// of them in flight; each fetch is scoped to the smaller of the
// per-provider timeout and the remaining overall budget. Completions
// are funneled back to the calling goroutine, which is the only mutator
// of the merged record, so no locking happens on the merge path. Once
// the record is sufficient (see Record.Sufficient) no further providers
// are launched, but fetches already in flight are drained, not
// abandoned mid-flight.
type Aggregator struct {
	logger          Logger
	metrics         Metrics
	providerTimeout time.Duration
	overallTimeout  time.Duration
	concurrency     int

	workerPool *ants.Pool
	closeOnce  sync.Once

	statsMutex sync.RWMutex
	stats      map[string]*UsageStats
}

type providerOutcome struct {
	name        string
	observation Observation
	err         error
}

// Aggregate runs a single aggregation: the seed (if any) is folded in
// first, then providers are dispatched until the record is sufficient,
// the list is exhausted or the overall deadline passes. Individual
// provider failures are never fatal; they only populate the Failures
// diagnostics. The context may carry an even stricter deadline of its
// own.
func (a *Aggregator) Aggregate(ctx context.Context, providers []Provider, seed *Seed) AggregationResult {
	started := time.Now()

	ctx, cancel := context.WithTimeout(ctx, a.overallTimeout)
	defer cancel()

	result := AggregationResult{
		Attempted:   []string{},
		Failures:    []Failure{},
		SourcesUsed: []string{},
	}

	if seed != nil {
		if merged, changed := Merge(result.Record, seed.Observation); changed {
			result.Record = merged
			result.SourcesUsed = append(result.SourcesUsed, seed.Sources...)
		}
	}

	// every in-flight fetch has a slot to report into, so workers
	// never block on a finalized aggregation.
	outcomes := make(chan providerOutcome, len(providers))

	cursor := 0
	inFlight := 0
	stop := result.Record.Sufficient()

	refill := func() {
		for !stop && ctx.Err() == nil && inFlight < a.concurrency && cursor < len(providers) {
			provider := providers[cursor]
			cursor++
			inFlight++

			result.Attempted = append(result.Attempted, provider.Name())
			a.launchFetch(ctx, provider, outcomes)
		}
	}

	refill()

	for inFlight > 0 {
		var outcome providerOutcome

		select {
		case outcome = <-outcomes:
		case <-ctx.Done():
			// deadline passed: stop launching but wait for the
			// in-flight fetches to settle. Their own contexts are
			// cancelled already, so this is bounded.
			stop = true
			outcome = <-outcomes
		}

		inFlight--

		a.fold(&result, outcome)

		if result.Record.Sufficient() {
			stop = true
		}

		refill()
	}

	elapsed := time.Since(started)

	a.metrics.AggregationFinished(result.OK(), elapsed)
	a.logger.AggregationDone(result.OK(), len(result.Attempted), len(result.Failures), elapsed)

	return result
}

func (a *Aggregator) launchFetch(ctx context.Context, provider Provider, outcomes chan<- providerOutcome) {
	name := provider.Name()

	task := func() {
		reported := false

		defer func() {
			if panicValue := recover(); panicValue != nil && !reported {
				outcomes <- providerOutcome{
					name: name,
					err:  NewLookupError(ReasonInternal, fmt.Errorf("panic: %v", panicValue)),
				}
			}
		}()

		fetchCtx, cancel := context.WithTimeout(ctx, a.providerTimeout)
		defer cancel()

		observation, err := provider.Lookup(fetchCtx)

		reported = true
		outcomes <- providerOutcome{
			name:        name,
			observation: observation,
			err:         err,
		}
	}

	if err := a.workerPool.Submit(task); err != nil {
		outcomes <- providerOutcome{
			name: name,
			err:  NewLookupError(ReasonInternal, err),
		}
	}
}

func (a *Aggregator) fold(result *AggregationResult, outcome providerOutcome) {
	a.usageStats(outcome.name).Used(outcome.err)

	if outcome.err != nil {
		reason := FailureReason(outcome.err)

		result.Failures = append(result.Failures, Failure{
			Source: outcome.name,
			Reason: reason,
		})

		a.logger.LookupError(outcome.name, outcome.err)
		a.metrics.ProviderFailed(outcome.name, reason)

		return
	}

	a.metrics.ProviderSucceeded(outcome.name)

	merged, changed := Merge(result.Record, outcome.observation)
	if !changed {
		return
	}

	result.Record = merged
	result.SourcesUsed = append(result.SourcesUsed, outcome.name)
}

func (a *Aggregator) usageStats(name string) *UsageStats {
	a.statsMutex.RLock()
	stats, ok := a.stats[name]
	a.statsMutex.RUnlock()

	if ok {
		return stats
	}

	a.statsMutex.Lock()
	defer a.statsMutex.Unlock()

	if stats, ok = a.stats[name]; !ok {
		stats = &UsageStats{Name: name}
		a.stats[name] = stats
	}

	return stats
}

// UsageStats returns per-provider counters collected so far, sorted by
// provider name.
func (a *Aggregator) UsageStats() []*UsageStats {
	a.statsMutex.RLock()
	defer a.statsMutex.RUnlock()

	rv := make([]*UsageStats, 0, len(a.stats))

	for _, v := range a.stats {
		rv = append(rv, v)
	}

	sort.Slice(rv, func(i, j int) bool {
		return rv[i].Name < rv[j].Name
	})

	return rv
}

// Shutdown releases the worker pool. The aggregator must not be used
// afterwards.
func (a *Aggregator) Shutdown() {
	a.closeOnce.Do(func() {
		a.workerPool.Release()
	})
}

func NewAggregator(opts AggregatorOpts) (*Aggregator, error) {
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	metrics := opts.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}

	providerTimeout := opts.ProviderTimeout
	if providerTimeout <= 0 {
		providerTimeout = DefaultProviderTimeout
	}

	overallTimeout := opts.OverallTimeout
	if overallTimeout <= 0 {
		overallTimeout = DefaultOverallTimeout
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	workerPool, err := ants.NewPool(workerPoolSize,
		ants.WithExpiryDuration(workerPoolExpireTime))
	if err != nil {
		return nil, fmt.Errorf("cannot create a worker pool: %w", err)
	}

	return &Aggregator{
		logger:          logger,
		metrics:         metrics,
		providerTimeout: providerTimeout,
		overallTimeout:  overallTimeout,
		concurrency:     concurrency,
		workerPool:      workerPool,
		stats:           map[string]*UsageStats{},
	}, nil
}
