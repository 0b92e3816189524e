package core

import (
	"bufio"
	"strings"
	"testing"
)

func TestConfirmYes(t *testing.T) {
	scanner := GetInputWrapper{
		Scanner: *bufio.NewReader(strings.NewReader("y\n")),
	}

	confirmed, err := scanner.Confirm("remove everything? [y/N]")
	if err != nil || !confirmed {
		t.Logf(`answer y confirmed %t != %t, error: %s`, confirmed, true, err)
		t.FailNow()
	}
}

func TestConfirmDefaultIsNo(t *testing.T) {
	scanner := GetInputWrapper{
		Scanner: *bufio.NewReader(strings.NewReader("\n")),
	}

	confirmed, err := scanner.Confirm("remove everything? [y/N]")
	if err != nil || confirmed {
		t.Logf(`empty answer confirmed %t != %t, error: %s`, confirmed, false, err)
		t.FailNow()
	}
}

func TestGetInputStringDefault(t *testing.T) {
	scanner := GetInputWrapper{
		Scanner: *bufio.NewReader(strings.NewReader("\n")),
	}

	text, err := scanner.GetInputString("pick a value", "42")
	if err != nil || text != "42" {
		t.Fatalf(`got %q != "42", error: %s`, text, err)
	}
}
