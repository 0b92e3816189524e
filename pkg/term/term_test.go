// +build linux darwin freebsd

package term

import (
	"os"
	"testing"
)

func TestPipeIsNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("cannot create pipe: %s", err)
	}

	defer r.Close()
	defer w.Close()

	if IsTerminal(int(r.Fd())) {
		t.Logf("pipe read end reported as a terminal")
		t.FailNow()
	}
}

func TestGetSizeOnPipeFails(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("cannot create pipe: %s", err)
	}

	defer r.Close()
	defer w.Close()

	if _, _, errSize := GetSize(int(w.Fd())); errSize == nil {
		t.Logf("expected an error asking a pipe for a window size")
		t.FailNow()
	}
}

func TestGetAttrOnPipeFails(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("cannot create pipe: %s", err)
	}

	defer r.Close()
	defer w.Close()

	if _, errAttr := GetAttr(int(r.Fd())); errAttr == nil {
		t.Logf("expected an error reading termios attributes from a pipe")
		t.FailNow()
	}
}
