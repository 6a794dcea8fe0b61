package hashlib_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/sara-star-quant/hashgate/pkg/fips"
	"github.com/sara-star-quant/hashgate/pkg/hashlib"
)

const strictChildEnv = "HASHGATE_STRICT_CHILD"

// TestFIPS140Only re-runs itself with GODEBUG=fips140=only, where the Go
// FIPS module refuses md5 and sha1 outright.
func TestFIPS140Only(t *testing.T) {
	if os.Getenv(strictChildEnv) == "1" {
		runStrictChecks(t)
		return
	}
	if testing.Short() {
		t.Skip("spawns a subprocess")
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFIPS140Only$", "-test.v")
	cmd.Env = append(os.Environ(), strictChildEnv+"=1", "GODEBUG=fips140=only")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("fips140=only run failed: %v\n%s", err, out)
	}
	if bytes.Contains(out, []byte("--- SKIP")) {
		t.Skipf("fips140=only unavailable:\n%s", out)
	}
}

func runStrictChecks(t *testing.T) {
	if !fips.Enabled() || !fips.Strict() {
		t.Skip("runtime did not enter fips140=only")
	}

	reg := hashlib.New()
	if reg.Mode() != fips.ModeActive {
		t.Fatalf("Mode() = %v, want active", reg.Mode())
	}

	// Scenario C under the strictest runtime setting
	d, err := reg.New("md5", hashlib.UsedForSecurity(false), hashlib.WithData([]byte("abc")))
	if err != nil {
		t.Fatalf("md5 not for security: %v", err)
	}
	if got := d.HexDigest(); got != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("md5 = %s", got)
	}

	if _, err := reg.New("md5"); !errors.Is(err, hashlib.ErrUsedForSecurity) {
		t.Errorf("md5 for security: expected ErrUsedForSecurity, got %v", err)
	}

	fd, err := reg.FileDigest(context.Background(), strings.NewReader("abc"), "md5", hashlib.UsedForSecurity(false))
	if err != nil {
		t.Fatalf("FileDigest md5: %v", err)
	}
	if fd.HexDigest() != d.HexDigest() {
		t.Error("FileDigest md5 differs from one-shot")
	}

	if _, err := reg.New("sha1", hashlib.WithData([]byte("abc"))); !errors.Is(err, hashlib.ErrRefusedByRuntime) {
		t.Errorf("sha1: expected ErrRefusedByRuntime, got %v", err)
	}
	if _, err := reg.FileDigest(context.Background(), strings.NewReader("abc"), "sha1"); !errors.Is(err, hashlib.ErrRefusedByRuntime) {
		t.Errorf("FileDigest sha1: expected ErrRefusedByRuntime, got %v", err)
	}

	if _, err := reg.New("sha256", hashlib.WithData([]byte("abc"))); err != nil {
		t.Errorf("sha256 should be served: %v", err)
	}

	for _, res := range reg.SelfTest() {
		if !res.Passed {
			t.Errorf("%s self-test failed: %v", res.Provider, res.Errors)
		}
	}
}
