package core

import (
	"strings"
	"testing"
)

func TestBuildCmdVersion(t *testing.T) {
	version := buildCmdVersion()

	for _, want := range []string{divider, "Version:", "Git Commit:", "Go Version:", "OS/Arch:"} {
		if !strings.Contains(version, want) {
			t.Errorf("version string misses %q:\n%s", want, version)
		}
	}
}
