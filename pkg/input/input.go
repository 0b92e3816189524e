// +build linux darwin freebsd

// Package input decodes terminal key presses from a raw-mode byte stream.
package input

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// Kind separates key presses from the focus reports some terminals send.
type Kind int

const (
	KindKey Kind = iota
	KindFocusGained
	KindFocusLost
)

// Key identifies which key an event carries.
type Key int

const (
	KeyChar Key = iota
	KeyCtrl
	KeyFunction
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyEscape
	KeyNull
)

// Event is one decoded input event. Rune is set for KeyChar and KeyCtrl,
// F for KeyFunction.
type Event struct {
	Kind Kind
	Key  Key
	Rune rune
	F    int
}

var (
	// ErrTimeout reports that no input arrived before the poll deadline.
	ErrTimeout = errors.New("no input before timeout")

	errUnknownSequence = errors.New("cannot decode input sequence")
	errInvalidUTF8     = errors.New("input is not valid UTF-8")
)

var keyNames = map[Key]string{
	KeyBackspace: "Backspace",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyEscape:    "Escape",
	KeyNull:      "Null",
}

func (e Event) String() string {
	switch e.Kind {
	case KindFocusGained:
		return "FocusGained"
	case KindFocusLost:
		return "FocusLost"
	}

	switch e.Key {
	case KeyChar:
		return fmt.Sprintf("Char(%q)", e.Rune)
	case KeyCtrl:
		return fmt.Sprintf("Ctrl(%q)", e.Rune)
	case KeyFunction:
		return fmt.Sprintf("F%d", e.F)
	}

	return keyNames[e.Key]
}

// fdReader reads single bytes from a file descriptor.
type fdReader int

func (r fdReader) ReadByte() (byte, error) {
	var buf [1]byte

	n, err := unix.Read(int(r), buf[:])
	if err != nil {
		return 0, err
	}

	if n == 0 {
		return 0, io.EOF
	}

	return buf[0], nil
}

// Poll waits up to timeout for input on fd and decodes one event from it.
// Returns ErrTimeout when nothing arrives in time.
func Poll(fd int, timeout time.Duration) (Event, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	n, errPoll := unix.Poll(fds, int(timeout.Milliseconds()))
	if errPoll != nil {
		return Event{}, fmt.Errorf("poll input %w", errPoll)
	}

	if n == 0 {
		return Event{}, ErrTimeout
	}

	return Decode(fdReader(fd))
}

// Decode reads one event worth of bytes from r. The mapping follows what
// Xterm-compatible terminals emit in raw mode: a plain byte is a character
// or a control chord, ESC starts a CSI or SS3 sequence.
func Decode(r io.ByteReader) (Event, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch {
	case b == 0x1b:
		return decodeEscape(r)
	case b == '\n' || b == '\r':
		return Event{Key: KeyChar, Rune: '\n'}, nil
	case b == '\t':
		return Event{Key: KeyTab}, nil
	case b == 0x7f:
		return Event{Key: KeyBackspace}, nil
	case b == 0x00:
		return Event{Key: KeyNull}, nil
	case b >= 0x01 && b <= 0x1a:
		return Event{Key: KeyCtrl, Rune: rune(b + 96)}, nil
	case b >= 0x1c && b <= 0x1f:
		return Event{Key: KeyCtrl, Rune: rune(b + 24)}, nil
	}

	return decodeRune(b, r)
}

func decodeRune(b byte, r io.ByteReader) (Event, error) {
	buf := make([]byte, 1, utf8.UTFMax)
	buf[0] = b

	for len(buf) <= utf8.UTFMax {
		if utf8.FullRune(buf) {
			decoded, _ := utf8.DecodeRune(buf)
			if decoded == utf8.RuneError {
				return Event{}, errInvalidUTF8
			}

			return Event{Key: KeyChar, Rune: decoded}, nil
		}

		next, err := r.ReadByte()
		if err != nil {
			return Event{}, errInvalidUTF8
		}

		buf = append(buf, next)
	}

	return Event{}, errInvalidUTF8
}

func decodeEscape(r io.ByteReader) (Event, error) {
	b, err := r.ReadByte()
	if err != nil {
		// a lone ESC byte is the escape key itself
		return Event{Key: KeyEscape}, nil
	}

	switch b {
	case 'O':
		// SS3: F1-F4 on most terminals, up to F... on some
		fKey, errF := r.ReadByte()
		if errF != nil {
			return Event{}, errUnknownSequence
		}

		if fKey >= 'P' && fKey <= 's' {
			return Event{Key: KeyFunction, F: int(1 + fKey - 'P')}, nil
		}

		return Event{}, errUnknownSequence
	case '[':
		return decodeCSI(r)
	}

	return Event{}, errUnknownSequence
}

func decodeCSI(r io.ByteReader) (Event, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Event{}, errUnknownSequence
	}

	switch b {
	case '[':
		// linux console F1-F5
		fKey, errF := r.ReadByte()
		if errF != nil {
			return Event{}, errUnknownSequence
		}

		if fKey >= 'A' && fKey <= 'E' {
			return Event{Key: KeyFunction, F: int(1 + fKey - 'A')}, nil
		}

		return Event{}, errUnknownSequence
	case 'A':
		return Event{Key: KeyUp}, nil
	case 'B':
		return Event{Key: KeyDown}, nil
	case 'C':
		return Event{Key: KeyRight}, nil
	case 'D':
		return Event{Key: KeyLeft}, nil
	case 'H':
		return Event{Key: KeyHome}, nil
	case 'F':
		return Event{Key: KeyEnd}, nil
	case 'Z':
		return Event{Key: KeyBackTab}, nil
	case 'I':
		return Event{Kind: KindFocusGained}, nil
	case 'O':
		return Event{Kind: KindFocusLost}, nil
	}

	if b >= '0' && b <= '9' {
		return decodeTilde(b, r)
	}

	return Event{}, errUnknownSequence
}

// decodeTilde handles the CSI <digits> ~ family (vt220 editing keys).
func decodeTilde(first byte, r io.ByteReader) (Event, error) {
	num := int(first - '0')

	for {
		b, err := r.ReadByte()
		if err != nil {
			return Event{}, errUnknownSequence
		}

		if b >= '0' && b <= '9' {
			num = num*10 + int(b-'0')
			continue
		}

		if b != '~' {
			return Event{}, errUnknownSequence
		}

		break
	}

	switch num {
	case 1, 7:
		return Event{Key: KeyHome}, nil
	case 2:
		return Event{Key: KeyInsert}, nil
	case 3:
		return Event{Key: KeyDelete}, nil
	case 4, 8:
		return Event{Key: KeyEnd}, nil
	case 5:
		return Event{Key: KeyPageUp}, nil
	case 6:
		return Event{Key: KeyPageDown}, nil
	}

	return Event{}, errUnknownSequence
}
