// Package term provides the raw-mode terminal input driver: it switches
// the controlling TTY into raw mode and decodes the byte stream into
// typed key and mouse signals. Consumers treat it as an opaque blocking
// iterator; decoding details never leak past this package.
package term

// KeyCode identifies a decoded key. Printable keys use KeyRune with the
// rune carried alongside; everything else is a dedicated code.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
	KeyCtrlC
)

// Key is one decoded key press.
type Key struct {
	Code KeyCode
	Rune rune
}

// Wheel is the scroll direction of a mouse signal. Mouse actions other
// than wheel movement decode to WheelNone.
type Wheel int

const (
	WheelNone Wheel = iota
	WheelUp
	WheelDown
)

// Signal is one discrete input action read from the terminal.
type Signal interface {
	signal()
}

// KeySignal carries a key press.
type KeySignal struct {
	Key Key
}

// MouseSignal carries a mouse action. Only wheel movement is
// distinguished; presses and releases arrive with WheelNone.
type MouseSignal struct {
	Wheel Wheel
}

func (KeySignal) signal()   {}
func (MouseSignal) signal() {}

// Reader is a blocking iterator of input signals. Next returns io.EOF
// (or a read error) when the underlying terminal is closed; bytes that
// do not decode to a supported signal are skipped, never surfaced.
type Reader interface {
	Next() (Signal, error)
}
