// +build linux darwin freebsd

package input

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeSequences(t *testing.T) {
	cases := []struct {
		name  string
		bytes []byte
		want  Event
	}{
		{"plain char", []byte("a"), Event{Key: KeyChar, Rune: 'a'}},
		{"carriage return", []byte("\r"), Event{Key: KeyChar, Rune: '\n'}},
		{"newline", []byte("\n"), Event{Key: KeyChar, Rune: '\n'}},
		{"tab", []byte("\t"), Event{Key: KeyTab}},
		{"backspace", []byte{0x7f}, Event{Key: KeyBackspace}},
		{"null", []byte{0x00}, Event{Key: KeyNull}},
		{"ctrl-a", []byte{0x01}, Event{Key: KeyCtrl, Rune: 'a'}},
		{"ctrl-z", []byte{0x1a}, Event{Key: KeyCtrl, Rune: 'z'}},
		{"ctrl-backslash", []byte{0x1c}, Event{Key: KeyCtrl, Rune: '4'}},
		{"lone escape", []byte{0x1b}, Event{Key: KeyEscape}},
		{"up", []byte("\x1b[A"), Event{Key: KeyUp}},
		{"down", []byte("\x1b[B"), Event{Key: KeyDown}},
		{"right", []byte("\x1b[C"), Event{Key: KeyRight}},
		{"left", []byte("\x1b[D"), Event{Key: KeyLeft}},
		{"home", []byte("\x1b[H"), Event{Key: KeyHome}},
		{"end", []byte("\x1b[F"), Event{Key: KeyEnd}},
		{"backtab", []byte("\x1b[Z"), Event{Key: KeyBackTab}},
		{"focus gained", []byte("\x1b[I"), Event{Kind: KindFocusGained}},
		{"focus lost", []byte("\x1b[O"), Event{Kind: KindFocusLost}},
		{"f1 ss3", []byte("\x1bOP"), Event{Key: KeyFunction, F: 1}},
		{"f4 ss3", []byte("\x1bOS"), Event{Key: KeyFunction, F: 4}},
		{"f1 console", []byte("\x1b[[A"), Event{Key: KeyFunction, F: 1}},
		{"f5 console", []byte("\x1b[[E"), Event{Key: KeyFunction, F: 5}},
		{"insert", []byte("\x1b[2~"), Event{Key: KeyInsert}},
		{"delete", []byte("\x1b[3~"), Event{Key: KeyDelete}},
		{"page up", []byte("\x1b[5~"), Event{Key: KeyPageUp}},
		{"page down", []byte("\x1b[6~"), Event{Key: KeyPageDown}},
		{"home vt220", []byte("\x1b[1~"), Event{Key: KeyHome}},
		{"end vt220", []byte("\x1b[8~"), Event{Key: KeyEnd}},
	}

	for _, c := range cases {
		got, err := Decode(bytes.NewReader(c.bytes))
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.name, err)
			continue
		}

		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%s: event mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func TestDecodeUTF8Stream(t *testing.T) {
	text := "abcéŷ¤£€ù%323"
	reader := bytes.NewReader([]byte(text))

	for _, want := range text {
		got, err := Decode(reader)
		if err != nil {
			t.Fatalf("decode %q: %s", want, err)
		}

		if got.Key != KeyChar || got.Rune != want {
			t.Fatalf("decoded %s, want Char(%q)", got, want)
		}
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte{0xff, 0xfe})); err == nil {
		t.Logf("expected an error decoding invalid UTF-8")
		t.FailNow()
	}
}

func TestDecodeUnknownSequence(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("\x1b[x"))); err == nil {
		t.Logf("expected an error decoding an unknown CSI sequence")
		t.FailNow()
	}
}

func TestEventString(t *testing.T) {
	cases := map[string]Event{
		"Char('q')": {Key: KeyChar, Rune: 'q'},
		"Ctrl('c')": {Key: KeyCtrl, Rune: 'c'},
		"F5":        {Key: KeyFunction, F: 5},
		"Up":        {Key: KeyUp},
		"FocusLost": {Kind: KindFocusLost},
	}

	for want, ev := range cases {
		if got := ev.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
