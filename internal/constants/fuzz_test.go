package constants

import (
	"strings"
	"testing"
)

// FuzzNormalizeAlgorithm checks that normalization never leaves upper case,
// dashes or surrounding space behind, and that canonical names are fixed
// points.
//
//	go test -fuzz=FuzzNormalizeAlgorithm -fuzztime=30s ./internal/constants/
func FuzzNormalizeAlgorithm(f *testing.F) {
	for _, seed := range []string{"SHA3-256", "sha-256", "SHA512/256", "shake128", " md5 ", "", "sha3", "sha384"} {
		f.Add(seed)
	}
	for _, name := range Guaranteed() {
		if got := NormalizeAlgorithm(name); got != name {
			f.Fatalf("canonical name %q normalized to %q", name, got)
		}
	}

	f.Fuzz(func(t *testing.T, name string) {
		n := NormalizeAlgorithm(name)
		if strings.ContainsAny(n, "-ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
			t.Errorf("%q normalized to %q", name, n)
		}
		if n != strings.TrimSpace(n) {
			t.Errorf("%q normalized to %q with surrounding space", name, n)
		}
	})
}
