package app

import (
	"vitop/internal/logger"
	"vitop/internal/term"
)

// InputSource turns the terminal's raw signal stream into events on the
// shared channel. Every discrete signal becomes exactly one event, in
// the order read; nothing is buffered or coalesced here.
type InputSource struct {
	reader term.Reader
	events chan<- Event
	done   <-chan struct{}
	log    logger.Logger
}

// NewInputSource wires a signal reader to the shared event channel.
// done is closed by the coordinator on shutdown.
func NewInputSource(reader term.Reader, events chan<- Event, done <-chan struct{}, log logger.Logger) *InputSource {
	if log == nil {
		log = logger.Noop()
	}
	return &InputSource{reader: reader, events: events, done: done, log: log}
}

// Run blocks on the reader until it fails or the coordinator shuts
// down. A read error is the normal exit once the terminal closes, so it
// is logged at debug level only.
func (s *InputSource) Run() {
	for {
		sig, err := s.reader.Next()
		if err != nil {
			s.log.Debug("input reader closed: %v", err)
			return
		}

		var ev Event
		switch sg := sig.(type) {
		case term.KeySignal:
			ev = KeyEvent{Key: sg.Key}
		case term.MouseSignal:
			ev = MouseEvent{Wheel: sg.Wheel}
		default:
			continue
		}

		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}
