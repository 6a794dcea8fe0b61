package hashlib_test

import (
	"bytes"
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/sara-star-quant/hashgate/pkg/hashlib"
)

func TestDigestBasics(t *testing.T) {
	d, err := inactiveRegistry().New("MD5", hashlib.WithData([]byte("a")))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Update([]byte("b")); err != nil {
		t.Fatal(err)
	}
	if _, err := io.Copy(d, strings.NewReader("c")); err != nil {
		t.Fatal(err)
	}

	if d.Name() != "md5" {
		t.Errorf("Name() = %q, want md5", d.Name())
	}
	if d.Size() != 16 || d.BlockSize() != 64 {
		t.Errorf("Size/BlockSize = %d/%d", d.Size(), d.BlockSize())
	}
	if got := d.HexDigest(); got != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("HexDigest() = %s", got)
	}
	if d.HexDigest() != d.HexDigest() {
		t.Error("Sum should not change state")
	}

	want, _ := hex.DecodeString("900150983cd24fb0d6963f7d28e17f72")
	if !d.Equal(want) {
		t.Error("Equal should accept the matching digest")
	}
	if d.Equal(want[:8]) {
		t.Error("Equal should reject a truncated digest")
	}
	if d.Hash() == nil {
		t.Error("Hash() should expose the underlying hash")
	}

	d.Reset()
	if d.HexDigest() != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("Reset should clear state, got %s", d.HexDigest())
	}
}

func TestDigestCopy(t *testing.T) {
	reg := inactiveRegistry()
	for _, alg := range []string{"md5", "sha256", "sha3_512", "blake2b", "blake2s", "shake_128", "k12"} {
		d, err := reg.New(alg, hashlib.WithData([]byte("shared prefix")))
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}

		c, err := d.Copy()
		if err != nil {
			t.Fatalf("%s: Copy failed: %v", alg, err)
		}
		if !bytes.Equal(c.Sum(), d.Sum()) {
			t.Errorf("%s: copy should start equal", alg)
		}

		if err := c.Update([]byte(" and more")); err != nil {
			t.Fatal(err)
		}
		if bytes.Equal(c.Sum(), d.Sum()) {
			t.Errorf("%s: copy should evolve independently", alg)
		}
		if c.Name() != d.Name() {
			t.Errorf("%s: copy lost its name", alg)
		}
	}
}
