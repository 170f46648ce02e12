// Package app holds the event-coordination core: two producer
// goroutines (terminal input and the metrics sampler) feed typed events
// into one shared channel, and a single coordinator loop consumes them,
// mutates application state, and drives the renderer. The channel is
// the only synchronization primitive between the three activities.
package app

import (
	"vitop/internal/metrics"
	"vitop/internal/term"
)

// Event is one item on the shared producer-to-coordinator channel.
type Event interface {
	isEvent()
}

// KeyEvent carries one decoded key press from the input source.
type KeyEvent struct {
	Key term.Key
}

// MouseEvent carries one decoded mouse action from the input source.
type MouseEvent struct {
	Wheel term.Wheel
}

// UpdateEvent carries a fresh metrics snapshot from the sampler. The
// snapshot belongs exclusively to the coordinator once delivered; the
// sampler never touches it again.
type UpdateEvent struct {
	Snapshot *metrics.Snapshot
}

func (KeyEvent) isEvent()    {}
func (MouseEvent) isEvent()  {}
func (UpdateEvent) isEvent() {}
