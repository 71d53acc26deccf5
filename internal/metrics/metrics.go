package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
	callsByOp       map[string]int
}

// RunSummary describes the most recent report run.
type RunSummary struct {
	Runs        int
	Failures    int
	Results     int
	LastRunTime time.Duration
}

// Recorder keeps in-memory counters for provider calls and report runs and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	runs  RunSummary
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt counts one upstream call for provider/op and stores its latency.
func (r *Recorder) RecordProviderAttempt(provider, op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.callsByOp[op]++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, op, duration, err)
	}
}

// RecordRateLimit tracks a 429 from the provider and the Retry-After it sent.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordRun tracks one pipeline run, the number of team results it produced and its outcome.
func (r *Recorder) RecordRun(duration time.Duration, results int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs.Runs++
	r.runs.LastRunTime = duration
	if err != nil {
		r.runs.Failures++
	} else {
		r.runs.Results += results
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(duration, results, err)
	}
}

// Runs returns a copy of the run counters.
func (r *Recorder) Runs() RunSummary {
	if r == nil {
		return RunSummary{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// Snapshot is a copy of the stats recorded for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
	CallsByOp       map[string]int
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	byOp := make(map[string]int, len(stats.callsByOp))
	for op, n := range stats.callsByOp {
		byOp[op] = n
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
		CallsByOp:       byOp,
	}
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{callsByOp: make(map[string]int)}
		r.stats[provider] = stats
	}
	return stats
}
