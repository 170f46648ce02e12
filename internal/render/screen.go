// Package render draws the dashboard. It owns the terminal's output
// side: the alternate screen, cursor visibility, and mouse reporting,
// plus the lipgloss view composition for each frame.
package render

import (
	"os"

	"github.com/muesli/termenv"
)

// Screen wraps the terminal output stream and the modes the dashboard
// flips on while running.
type Screen struct {
	out     *termenv.Output
	started bool
}

// NewScreen builds a screen over stdout.
func NewScreen() *Screen {
	return &Screen{out: termenv.NewOutput(os.Stdout)}
}

// Start enters the alternate screen, hides the cursor, and enables SGR
// mouse reporting.
func (s *Screen) Start() {
	if s.started {
		return
	}
	s.out.AltScreen()
	s.out.HideCursor()
	s.out.EnableMouseCellMotion()
	s.out.EnableMouseExtendedMode()
	s.out.ClearScreen()
	s.started = true
}

// Stop undoes everything Start changed. Safe to call more than once;
// it must run before the process exits or the user's terminal is left
// unusable.
func (s *Screen) Stop() {
	if !s.started {
		return
	}
	s.out.DisableMouseExtendedMode()
	s.out.DisableMouseCellMotion()
	s.out.ShowCursor()
	s.out.ExitAltScreen()
	s.started = false
}

// Flip replaces the visible frame with view.
func (s *Screen) Flip(view string) error {
	s.out.MoveCursor(1, 1)
	s.out.ClearScreen()
	_, err := s.out.WriteString(view)
	return err
}
