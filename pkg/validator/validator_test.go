package validator

import (
	"testing"
)

func TestValidLogFile(t *testing.T) {
	logPath := "./out.log"
	if valid, err := LogFile(logPath); !valid || err != nil {
		t.Logf(`logPath %s is %t != %t, error: %s`, logPath, valid, true, err)
		t.FailNow()
	}
}

func TestValidTempLogFile(t *testing.T) {
	logPath := "/tmp/termprobe.log"
	if valid, err := LogFile(logPath); !valid || err != nil {
		t.Logf(`logPath %s is %t != %t, error: %s`, logPath, valid, true, err)
		t.FailNow()
	}
}

func TestDirIsNotAValidLogFile(t *testing.T) {
	logPath := "/tmp"
	if valid, err := LogFile(logPath); valid || err == nil {
		t.Fatalf(`logPath %s is %t != %t, error: %s`, logPath, valid, false, err)
	}
}

func TestPollTimeout(t *testing.T) {
	if valid, err := PollTimeout(1000); !valid || err != nil {
		t.Fatalf(`timeout 1000 is %t != %t, error: %s`, valid, true, err)
	}

	for _, bad := range []int{0, -1, 60001} {
		if valid, err := PollTimeout(bad); valid || err == nil {
			t.Fatalf(`timeout %d is %t != %t`, bad, valid, false)
		}
	}
}
