package provider

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"github.com/sara-star-quant/hashgate/internal/constants"
	qerrors "github.com/sara-star-quant/hashgate/internal/errors"
)

// kat is a known-answer vector at the algorithm's default output size.
type kat struct {
	message  string
	expected string
}

// Known-answer vectors from the algorithms' reference documents
// (FIPS 180-4, FIPS 202, RFC 1320, RFC 1321, RFC 7693, RIPEMD-160).
var katVectors = map[string]kat{
	constants.MD4:       {"abc", "a448017aaf21d8525fc10ae87aa6729d"},
	constants.MD5:       {"abc", "900150983cd24fb0d6963f7d28e17f72"},
	constants.RIPEMD160: {"abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
	constants.SHA1:      {"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	constants.SHA224:    {"abc", "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
	constants.SHA256:    {"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	constants.SHA384:    {"abc", "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
	constants.SHA512:    {"abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	constants.SHA3256:   {"abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	constants.SHA3512:   {"abc", "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
	constants.SHAKE128:  {"", "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26"},
	constants.SHAKE256:  {"", "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762fd75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be"},
	constants.BLAKE2b:   {"abc", "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"},
	constants.BLAKE2s:   {"abc", "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982"},
}

// SelfTestResult reports a provider's known-answer checks.
type SelfTestResult struct {
	Provider string
	Passed   bool
	Checked  []string // Algorithms with a vector, sorted
	Skipped  []string // Refused by the runtime, not failures
	Errors   []string
}

// SelfTest runs every known-answer vector the provider can serve.
// Algorithms without a vector are ignored; algorithms the runtime refuses
// are listed in Skipped.
func SelfTest(p Provider) *SelfTestResult {
	res := &SelfTestResult{Provider: p.Name(), Passed: true}

	names := p.Algorithms()
	sort.Strings(names)
	for _, name := range names {
		v, ok := katVectors[name]
		if !ok {
			continue
		}
		err := runKAT(p, name, v)
		if errors.Is(err, qerrors.ErrRefusedByRuntime) {
			res.Skipped = append(res.Skipped, name)
			continue
		}
		res.Checked = append(res.Checked, name)
		if err != nil {
			res.Passed = false
			res.Errors = append(res.Errors, fmt.Sprintf("%s KAT failed: %v", name, err))
		}
	}
	return res
}

func runKAT(p Provider, name string, v kat) error {
	want, err := hex.DecodeString(v.expected)
	if err != nil {
		return err
	}

	// The vectors exercise algorithm output only; declare non-security use
	// so providers that enforce the policy still answer.
	h, err := p.New(name, Apply(UsedForSecurity(false)))
	if err != nil {
		return fmt.Errorf("construct: %w", err)
	}
	_, _ = h.Write([]byte(v.message))
	if got := h.Sum(nil); !bytes.Equal(got, want) {
		return fmt.Errorf("output mismatch: got %x, want %x", got, want)
	}
	return nil
}
