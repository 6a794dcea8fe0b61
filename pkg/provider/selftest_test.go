package provider_test

import (
	"hash"
	"strings"
	"testing"

	"github.com/sara-star-quant/hashgate/internal/constants"
	"github.com/sara-star-quant/hashgate/pkg/provider"
)

func TestSelfTestBuiltin(t *testing.T) {
	res := provider.SelfTest(provider.Builtin())
	if !res.Passed {
		t.Fatalf("builtin self-test failed: %v", res.Errors)
	}
	if res.Provider != "builtin" {
		t.Errorf("Provider = %q", res.Provider)
	}
	for _, want := range []string{constants.MD4, constants.MD5, constants.RIPEMD160, constants.BLAKE2b, constants.BLAKE2s, constants.SHAKE256} {
		if !contains(res.Checked, want) {
			t.Errorf("%s not checked", want)
		}
	}
}

func TestSelfTestStdlib(t *testing.T) {
	res := provider.SelfTest(provider.Stdlib())
	if !res.Passed {
		t.Fatalf("stdlib self-test failed: %v", res.Errors)
	}
	if contains(res.Checked, constants.MD5) {
		t.Error("stdlib provider should not serve md5")
	}
	if !contains(res.Checked, constants.SHA512) {
		t.Error("sha512 not checked")
	}
}

// brokenProvider returns the wrong hash for sha256.
type brokenProvider struct{ provider.Provider }

func (b brokenProvider) New(alg string, o provider.Options) (hash.Hash, error) {
	if alg == constants.SHA256 {
		return b.Provider.New(constants.SHA224, o)
	}
	return b.Provider.New(alg, o)
}

func TestSelfTestDetectsMismatch(t *testing.T) {
	res := provider.SelfTest(brokenProvider{provider.Stdlib()})
	if res.Passed {
		t.Fatal("self-test should fail for a broken provider")
	}
	if len(res.Errors) != 1 || !strings.HasPrefix(res.Errors[0], "sha256 KAT failed") {
		t.Errorf("unexpected errors %v", res.Errors)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
