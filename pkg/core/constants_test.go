// +build linux darwin freebsd

package core

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

var constantLabels = []string{"ECHO", "ICANON", "ISIG", "", "NCCS", "TIOCFWINSZ"}

func TestWriteConstantsShape(t *testing.T) {
	var buffer bytes.Buffer

	WriteConstants(&buffer)

	out := buffer.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("output does not end with a newline: %q", out)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != len(constantLabels) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(constantLabels), out)
	}

	for i, label := range constantLabels {
		if label == "" {
			if lines[i] != "" {
				t.Errorf("line %d should be blank, got %q", i, lines[i])
			}
			continue
		}

		prefix := label + ": 0x"
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d is %q, want prefix %q", i, lines[i], prefix)
			continue
		}

		value := strings.TrimPrefix(lines[i], label+": 0x")
		if _, err := strconv.ParseUint(value, 16, 64); err != nil {
			t.Errorf("line %d value %q is not hexadecimal: %s", i, value, err)
		}

		if value != strings.ToLower(value) {
			t.Errorf("line %d value %q is not lowercase hex", i, value)
		}
	}
}

func TestWriteConstantsIdempotent(t *testing.T) {
	var first, second bytes.Buffer

	WriteConstants(&first)
	WriteConstants(&second)

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Logf("two runs differ: %q vs %q", first.String(), second.String())
		t.FailNow()
	}
}
