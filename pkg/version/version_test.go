package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestVersionStrings(t *testing.T) {
	v := String()
	if !strings.HasPrefix(v, "v") {
		t.Errorf("version string should start with v, got %s", v)
	}

	full := Full()
	if !strings.HasPrefix(full, "hashgate ") {
		t.Errorf("full version should start with project name, got %s", full)
	}
	if !strings.Contains(full, v) {
		t.Errorf("full version should contain version string, got %s", full)
	}
	if !strings.Contains(full, runtime.Version()) {
		t.Errorf("full version should contain the Go version, got %s", full)
	}
}
