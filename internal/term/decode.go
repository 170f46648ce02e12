package term

import (
	"bufio"
	"unicode"
)

// Control bytes the decoder recognizes outside escape sequences.
const (
	byteCtrlC = 0x03
	byteCR    = 0x0d
	byteLF    = 0x0a
	byteEsc   = 0x1b
)

// decodeSignal reads one signal from r, blocking until a full sequence
// is available. Unrecognized bytes and unsupported escape sequences are
// consumed and skipped so a stray sequence never wedges the stream.
func decodeSignal(r *bufio.Reader) (Signal, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}

		switch b {
		case byteCtrlC:
			return KeySignal{Key: Key{Code: KeyCtrlC}}, nil
		case byteCR, byteLF:
			return KeySignal{Key: Key{Code: KeyEnter}}, nil
		case byteEsc:
			sig, err := decodeEscape(r)
			if err != nil {
				return nil, err
			}
			if sig != nil {
				return sig, nil
			}
		default:
			if b < 0x20 || b == 0x7f {
				continue
			}
			ru, err := decodeRune(r, b)
			if err != nil {
				return nil, err
			}
			if unicode.IsPrint(ru) {
				return KeySignal{Key: Key{Code: KeyRune, Rune: ru}}, nil
			}
		}
	}
}

// decodeEscape handles the byte stream after a leading ESC. A lone ESC
// (nothing buffered behind it) is the Esc key; otherwise CSI sequences
// for arrows and SGR mouse reports are decoded. Returns a nil signal
// for sequences that decode to nothing.
func decodeEscape(r *bufio.Reader) (Signal, error) {
	if r.Buffered() == 0 {
		return KeySignal{Key: Key{Code: KeyEsc}}, nil
	}

	b, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if b != '[' {
		// Alt-modified key; not a binding we use.
		return nil, nil
	}

	b, err = r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch b {
	case 'A':
		return KeySignal{Key: Key{Code: KeyUp}}, nil
	case 'B':
		return KeySignal{Key: Key{Code: KeyDown}}, nil
	case 'C':
		return KeySignal{Key: Key{Code: KeyRight}}, nil
	case 'D':
		return KeySignal{Key: Key{Code: KeyLeft}}, nil
	case '<':
		return decodeSGRMouse(r)
	default:
		return nil, skipCSI(r, b)
	}
}

// decodeSGRMouse parses the remainder of an SGR mouse report,
// "button;x;yM" (press) or "button;x;ym" (release). Buttons 64 and 65
// are wheel up and wheel down; everything else is a plain mouse action.
func decodeSGRMouse(r *bufio.Reader) (Signal, error) {
	button := 0
	field := 0
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		switch {
		case b >= '0' && b <= '9':
			if field == 0 {
				button = button*10 + int(b-'0')
			}
		case b == ';':
			field++
		case b == 'M' || b == 'm':
			if b == 'M' {
				switch button {
				case 64:
					return MouseSignal{Wheel: WheelUp}, nil
				case 65:
					return MouseSignal{Wheel: WheelDown}, nil
				}
			}
			return MouseSignal{Wheel: WheelNone}, nil
		default:
			// Malformed report; abandon it.
			return nil, nil
		}
	}
}

// skipCSI consumes the rest of an unrecognized CSI sequence, which ends
// at the first byte in the final-byte range 0x40..0x7e.
func skipCSI(r *bufio.Reader, first byte) error {
	b := first
	for {
		if b >= 0x40 && b <= 0x7e {
			return nil
		}
		var err error
		b, err = r.ReadByte()
		if err != nil {
			return err
		}
	}
}

// decodeRune completes a UTF-8 sequence whose first byte has already
// been read. ASCII is returned directly.
func decodeRune(r *bufio.Reader, first byte) (rune, error) {
	if first < 0x80 {
		return rune(first), nil
	}
	n := 0
	switch {
	case first&0xe0 == 0xc0:
		n = 1
	case first&0xf0 == 0xe0:
		n = 2
	case first&0xf8 == 0xf0:
		n = 3
	default:
		return unicode.ReplacementChar, nil
	}
	buf := make([]byte, 1, n+1)
	buf[0] = first
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		buf = append(buf, b)
	}
	ru := []rune(string(buf))
	if len(ru) == 0 {
		return unicode.ReplacementChar, nil
	}
	return ru[0], nil
}
