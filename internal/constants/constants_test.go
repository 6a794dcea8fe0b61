package constants

import (
	"sort"
	"testing"
)

// TestNormalizeAlgorithm tests canonicalisation of algorithm spellings.
func TestNormalizeAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sha256", SHA256},
		{"SHA256", SHA256},
		{"SHA-256", SHA256},
		{" sha-1 ", SHA1},
		{"SHA-512/256", SHA512256},
		{"sha512_224", SHA512224},
		{"SHA3-256", SHA3256},
		{"sha3_384", SHA3384},
		{"sha384", SHA384},
		{"SHA3256", SHA3256},
		{"SHAKE128", SHAKE128},
		{"shake-256", SHAKE256},
		{"MD5", MD5},
		{"BLAKE2b", BLAKE2b},
		{"k12", K12},
		{"nope", "nope"},
	}

	for _, tt := range tests {
		if got := NormalizeAlgorithm(tt.in); got != tt.want {
			t.Errorf("NormalizeAlgorithm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestIsFIPSApproved tests the approved algorithm classification.
func TestIsFIPSApproved(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{SHA256, true},
		{"SHA3-512", true},
		{SHAKE128, true},
		{MD5, false},
		{MD4, false},
		{BLAKE2b, false},
		{K12, false},
	}

	for _, tt := range tests {
		if got := IsFIPSApproved(tt.name); got != tt.want {
			t.Errorf("IsFIPSApproved(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGuaranteedIsSortedCopy(t *testing.T) {
	g := Guaranteed()
	if !sort.StringsAreSorted(g) {
		t.Errorf("Guaranteed() not sorted: %v", g)
	}
	g[0] = "mutated"
	if Guaranteed()[0] == "mutated" {
		t.Error("Guaranteed() should return a copy")
	}
}
