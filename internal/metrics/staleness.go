package metrics

import "time"

// DefaultStaleMax is how old a cached counter may be before rate
// computations must treat it as absent rather than reused. Reusing a stale
// counter would report an ancient delta as current throughput.
const DefaultStaleMax = 60 * time.Second

// StalenessTracker records the timestamp of the last successful sample
// against a maximum-age threshold. It is owned by the sampler source; the
// display transformer applies the same threshold to snapshot timestamps
// when diffing counters.
type StalenessTracker struct {
	maxAge time.Duration
	last   time.Time
}

// NewStalenessTracker returns a tracker with the given threshold.
// A non-positive maxAge falls back to DefaultStaleMax.
func NewStalenessTracker(maxAge time.Duration) *StalenessTracker {
	if maxAge <= 0 {
		maxAge = DefaultStaleMax
	}
	return &StalenessTracker{maxAge: maxAge}
}

// MaxAge returns the configured threshold.
func (t *StalenessTracker) MaxAge() time.Duration {
	return t.maxAge
}

// MarkSuccess records a successful sample at the given time.
func (t *StalenessTracker) MarkSuccess(at time.Time) {
	t.last = at
}

// LastSuccess returns the time of the last successful sample, or the zero
// time if none has succeeded yet.
func (t *StalenessTracker) LastSuccess() time.Time {
	return t.last
}

// IsStale reports whether the last successful sample is older than the
// threshold as of now. True when no sample has ever succeeded.
func (t *StalenessTracker) IsStale(now time.Time) bool {
	if t.last.IsZero() {
		return true
	}
	return now.Sub(t.last) > t.maxAge
}

// Expired reports whether a cached reading taken at prev is too old to
// diff against one taken at now, per the threshold.
func (t *StalenessTracker) Expired(prev, now time.Time) bool {
	if prev.IsZero() {
		return true
	}
	return now.Sub(prev) > t.maxAge
}
