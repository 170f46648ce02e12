package term

import (
	"bufio"
	"os"

	xterm "golang.org/x/term"

	"vitop/internal/errors"
)

// TTY reads decoded signals from the process's controlling terminal in
// raw mode. It implements Reader.
type TTY struct {
	in    *os.File
	fd    int
	prior *xterm.State
	buf   *bufio.Reader
}

// Open switches stdin into raw mode and returns a signal reader over
// it. The caller must Restore before the process exits; until then the
// terminal echoes nothing and line editing is off.
func Open() (*TTY, error) {
	fd := int(os.Stdin.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, errors.New(errors.ErrInput,
			"Standard input is not a terminal",
			"Run from an interactive terminal, not a pipe")
	}
	prior, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInput,
			"Could not switch the terminal into raw mode",
			"Check that the terminal supports raw mode")
	}
	return &TTY{
		in:    os.Stdin,
		fd:    fd,
		prior: prior,
		buf:   bufio.NewReader(os.Stdin),
	}, nil
}

// Next blocks until one signal has been decoded from the terminal.
func (t *TTY) Next() (Signal, error) {
	return decodeSignal(t.buf)
}

// Restore returns the terminal to its pre-raw state. Safe to call more
// than once.
func (t *TTY) Restore() error {
	if t.prior == nil {
		return nil
	}
	prior := t.prior
	t.prior = nil
	return xterm.Restore(t.fd, prior)
}
