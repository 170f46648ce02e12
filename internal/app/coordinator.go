package app

import (
	"time"

	"vitop/internal/canvas"
	"vitop/internal/errors"
	"vitop/internal/logger"
	"vitop/internal/metrics"
	"vitop/internal/term"
)

// DefaultTick is how long the coordinator waits for an event before
// redrawing anyway. It governs redraw responsiveness, not data
// freshness, and is normally shorter than the sampling interval.
const DefaultTick = 250 * time.Millisecond

// eventBuffer keeps producers from blocking on send under normal
// operation.
const eventBuffer = 128

// Renderer draws one frame from the current display buffers and
// application state. A render failure is fatal to the coordinator.
type Renderer interface {
	Render(data *canvas.Data, state *State) error
}

// Coordinator is the single consumer of the shared event channel. It
// owns all application state and the display buffers; producers only
// ever hand it fresh, independent values.
type Coordinator struct {
	events      chan Event
	done        chan struct{}
	tick        time.Duration
	state       *State
	transformer *canvas.Transformer
	renderer    Renderer
	log         logger.Logger
	data        *canvas.Data
}

// NewCoordinator builds a coordinator around the given transformer and
// renderer. A non-positive tick means DefaultTick.
func NewCoordinator(transformer *canvas.Transformer, renderer Renderer, tick time.Duration, log logger.Logger) *Coordinator {
	if tick <= 0 {
		tick = DefaultTick
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Coordinator{
		events:      make(chan Event, eventBuffer),
		done:        make(chan struct{}),
		tick:        tick,
		state:       NewState(),
		transformer: transformer,
		renderer:    renderer,
		log:         log,
		data:        &canvas.Data{},
	}
}

// Events is the channel producers send on.
func (c *Coordinator) Events() chan<- Event {
	return c.events
}

// Done is closed when the coordinator's loop exits; producers select on
// it to shut down.
func (c *Coordinator) Done() <-chan struct{} {
	return c.done
}

// Run consumes events in strict arrival order until a quit key arrives
// or a render fails. Each loop iteration waits at most one tick; on
// timeout it redraws with the last buffers so the display stays live
// even without new data.
func (c *Coordinator) Run() error {
	defer close(c.done)

	timer := time.NewTimer(c.tick)
	defer timer.Stop()

	for {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(c.tick)

		select {
		case ev := <-c.events:
			c.handle(ev)
		case <-timer.C:
		}

		if c.state.Quitting() {
			return nil
		}
		if err := c.renderer.Render(c.data, c.state); err != nil {
			c.log.Error("render failed: %v", err)
			return errors.WrapWithCode(err, errors.ErrRender,
				"Could not draw the dashboard",
				"Resize the terminal or check that it supports ANSI output")
		}
	}
}

func (c *Coordinator) handle(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		c.handleKey(e.Key)
	case MouseEvent:
		c.handleWheel(e.Wheel)
	case UpdateEvent:
		c.data = c.transformer.Transform(e.Snapshot, c.state.Sort)
		c.state.ClampSelection(len(c.data.Processes))
	}
}

func (c *Coordinator) handleKey(key term.Key) {
	switch key.Code {
	case term.KeyEsc, term.KeyCtrlC:
		c.state.requestQuit()
		return
	case term.KeyUp:
		c.state.MoveSelection(-1, len(c.data.Processes))
		return
	case term.KeyDown:
		c.state.MoveSelection(1, len(c.data.Processes))
		return
	case term.KeyRune:
	default:
		return
	}

	switch key.Rune {
	case KeyQuit:
		c.state.requestQuit()
	case KeySelectUpK:
		c.state.MoveSelection(-1, len(c.data.Processes))
	case KeySelectDnJ:
		c.state.MoveSelection(1, len(c.data.Processes))
	case KeySortByCPU:
		c.applySort(metrics.SortByCPU)
	case KeySortByMem:
		c.applySort(metrics.SortByMem)
	case KeySortByPID:
		c.applySort(metrics.SortByPID)
	case KeySortByName:
		c.applySort(metrics.SortByName)
	}
}

func (c *Coordinator) handleWheel(wheel term.Wheel) {
	switch wheel {
	case term.WheelUp:
		c.state.MoveSelection(-1, len(c.data.Processes))
	case term.WheelDown:
		c.state.MoveSelection(1, len(c.data.Processes))
	}
}

// applySort changes the sort state and resorts the current process
// table immediately, so the change is visible before the next sample.
func (c *Coordinator) applySort(col metrics.SortColumn) {
	c.state.ApplySortColumn(col)
	c.data = c.transformer.Resort(c.data, c.state.Sort)
	c.state.ClampSelection(len(c.data.Processes))
}
