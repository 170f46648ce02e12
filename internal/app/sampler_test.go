package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitop/internal/errors"
	"vitop/internal/logger"
	"vitop/internal/metrics"
)

func fakeSnapshot() *metrics.Snapshot {
	return &metrics.Snapshot{TakenAt: time.Now()}
}

func receiveUpdate(t *testing.T, events <-chan Event, within time.Duration) time.Time {
	t.Helper()
	select {
	case ev := <-events:
		_, ok := ev.(UpdateEvent)
		require.True(t, ok, "expected an update event, got %T", ev)
		return time.Now()
	case <-time.After(within):
		t.Fatal("no update event arrived in time")
		return time.Time{}
	}
}

func TestSamplerFirstSampleFastThenSteady(t *testing.T) {
	events := make(chan Event, 8)
	done := make(chan struct{})
	defer close(done)

	collect := func(ctx context.Context) (*metrics.Snapshot, error) {
		return fakeSnapshot(), nil
	}
	src := NewSamplerSource(collect, 150*time.Millisecond, events, done, nil)
	src.warmup = 40 * time.Millisecond

	start := time.Now()
	go src.Run(context.Background())

	first := receiveUpdate(t, events, time.Second)
	assert.Less(t, first.Sub(start), 100*time.Millisecond,
		"first sample must not wait for the interval")

	second := receiveUpdate(t, events, time.Second)
	assert.GreaterOrEqual(t, second.Sub(first), 35*time.Millisecond,
		"second sample waits out the warm-up delay")
	assert.Less(t, second.Sub(first), src.interval,
		"warm-up is shorter than the configured interval")

	third := receiveUpdate(t, events, time.Second)
	assert.GreaterOrEqual(t, third.Sub(second), 140*time.Millisecond,
		"steady samples are spaced by the full interval")
}

func TestSamplerContinuesAfterCollectFailure(t *testing.T) {
	events := make(chan Event, 8)
	done := make(chan struct{})
	defer close(done)

	var calls atomic.Int32
	collect := func(ctx context.Context) (*metrics.Snapshot, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New(errors.ErrCollect, "no metrics", "")
		}
		return fakeSnapshot(), nil
	}

	log := logger.NewBufferLogger()
	src := NewSamplerSource(collect, 50*time.Millisecond, events, done, log)
	src.warmup = 10 * time.Millisecond

	go src.Run(context.Background())

	// The failed first tick emits nothing; the next tick still arrives.
	receiveUpdate(t, events, time.Second)
	assert.True(t, log.HasLevel("warn"))
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestSamplerStopsWhenDoneCloses(t *testing.T) {
	events := make(chan Event) // unbuffered, nobody receives
	done := make(chan struct{})

	collect := func(ctx context.Context) (*metrics.Snapshot, error) {
		return fakeSnapshot(), nil
	}
	src := NewSamplerSource(collect, 50*time.Millisecond, events, done, nil)

	finished := make(chan struct{})
	go func() {
		src.Run(context.Background())
		close(finished)
	}()

	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("sampler did not exit after done closed")
	}
}

func TestSamplerStopsOnContextCancel(t *testing.T) {
	events := make(chan Event, 8)
	done := make(chan struct{})
	defer close(done)

	collect := func(ctx context.Context) (*metrics.Snapshot, error) {
		return fakeSnapshot(), nil
	}
	src := NewSamplerSource(collect, time.Hour, events, done, nil)

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	go func() {
		src.Run(ctx)
		close(finished)
	}()

	receiveUpdate(t, events, time.Second)
	cancel()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("sampler did not exit after context cancel")
	}
}
