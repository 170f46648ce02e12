package app

import (
	"context"
	"time"

	"vitop/internal/logger"
	"vitop/internal/metrics"
)

// WarmupDelay bounds the wait between the first and second sample so
// the dashboard fills in quickly even under a long refresh interval.
const WarmupDelay = 250 * time.Millisecond

// CollectFunc acquires one metrics snapshot. Production wires this to
// the gopsutil-backed collector; tests substitute fakes.
type CollectFunc func(ctx context.Context) (*metrics.Snapshot, error)

// samplerPhase is the sampler's explicit two-state machine.
type samplerPhase int

const (
	phaseFirstSample samplerPhase = iota
	phaseSteady
)

// SamplerSource produces UpdateEvents on a timer. The first sample is
// taken immediately and followed by a short warm-up wait; every sample
// after that is spaced by the configured interval. A failed collection
// is logged and the tick skipped; it never stops the sampler.
type SamplerSource struct {
	collect  CollectFunc
	interval time.Duration
	warmup   time.Duration
	events   chan<- Event
	done     <-chan struct{}
	log      logger.Logger
}

// NewSamplerSource wires a collector to the shared event channel. done
// is closed by the coordinator on shutdown.
func NewSamplerSource(collect CollectFunc, interval time.Duration, events chan<- Event, done <-chan struct{}, log logger.Logger) *SamplerSource {
	if log == nil {
		log = logger.Noop()
	}
	return &SamplerSource{
		collect:  collect,
		interval: interval,
		warmup:   WarmupDelay,
		events:   events,
		done:     done,
		log:      log,
	}
}

// Run drives the sample loop until ctx is cancelled or the coordinator
// shuts down.
func (s *SamplerSource) Run(ctx context.Context) {
	phase := phaseFirstSample
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		snap, err := s.collect(ctx)
		if err != nil {
			s.log.Warn("metrics collection failed, skipping tick: %v", err)
		} else {
			select {
			case s.events <- UpdateEvent{Snapshot: snap}:
			case <-s.done:
				return
			case <-ctx.Done():
				return
			}
		}

		wait := s.interval
		if phase == phaseFirstSample {
			wait = s.warmup
			phase = phaseSteady
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)

		select {
		case <-timer.C:
		case <-s.done:
			return
		case <-ctx.Done():
			return
		}
	}
}
