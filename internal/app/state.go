package app

import "vitop/internal/metrics"

// Key bindings as constants for consistency.
const (
	KeyQuit       = 'q'
	KeySelectUpK  = 'k'
	KeySelectDnJ  = 'j'
	KeySortByCPU  = 'c'
	KeySortByMem  = 'm'
	KeySortByPID  = 'p'
	KeySortByName = 'n'
)

// State is the application state owned exclusively by the coordinator:
// the process-table selection, the sort state, and the quit flag. No
// producer goroutine ever reads or writes it.
type State struct {
	Selected int
	Sort     metrics.SortState
	quitting bool
}

// NewState returns the startup state: first row selected, processes
// sorted by CPU descending.
func NewState() *State {
	return &State{Sort: metrics.DefaultSortState()}
}

// MoveSelection shifts the selected row by delta, clamped to [0, count).
func (s *State) MoveSelection(delta, count int) {
	s.Selected += delta
	if s.Selected < 0 {
		s.Selected = 0
	}
	if s.Selected >= count && count > 0 {
		s.Selected = count - 1
	}
	if count == 0 {
		s.Selected = 0
	}
}

// ClampSelection keeps the selection valid after the process table
// changes size under it.
func (s *State) ClampSelection(count int) {
	s.MoveSelection(0, count)
}

// ApplySortColumn switches sorting to col in its natural direction, or
// flips the direction when col is already the active column.
func (s *State) ApplySortColumn(col metrics.SortColumn) {
	if s.Sort.Column == col {
		s.Sort.Descending = !s.Sort.Descending
		return
	}
	s.Sort = metrics.SortState{Column: col, Descending: naturalDescending(col)}
}

// Quitting reports whether a quit key has been handled.
func (s *State) Quitting() bool {
	return s.quitting
}

func (s *State) requestQuit() {
	s.quitting = true
}

// naturalDescending is the direction a column starts in when first
// selected: usage columns show heaviest first, identity columns
// ascending.
func naturalDescending(col metrics.SortColumn) bool {
	switch col {
	case metrics.SortByCPU, metrics.SortByMem:
		return true
	default:
		return false
	}
}
