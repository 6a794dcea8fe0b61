package hashlib_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sara-star-quant/hashgate/pkg/hashlib"
)

// --- Resolution Benchmarks ---

func BenchmarkConstructorCached(b *testing.B) {
	reg := activeRegistry()
	if _, err := reg.Constructor("md5"); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reg.Constructor("md5")
	}
}

func BenchmarkGatedReject(b *testing.B) {
	reg := activeRegistry()
	for i := 0; i < b.N; i++ {
		_, _ = reg.New("md5")
	}
}

// --- Digest Throughput Benchmarks ---

func benchmarkFileDigest(b *testing.B, alg string) {
	reg := inactiveRegistry()
	data := bytes.Repeat([]byte{0xa5}, 1<<20)
	ctx := context.Background()

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reg.FileDigest(ctx, bytes.NewReader(data), alg, hashlib.UsedForSecurity(false)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFileDigestSHA256(b *testing.B)  { benchmarkFileDigest(b, "sha256") }
func BenchmarkFileDigestSHA3256(b *testing.B) { benchmarkFileDigest(b, "sha3_256") }
func BenchmarkFileDigestBLAKE2b(b *testing.B) { benchmarkFileDigest(b, "blake2b") }
func BenchmarkFileDigestMD5(b *testing.B)     { benchmarkFileDigest(b, "md5") }
func BenchmarkFileDigestK12(b *testing.B)     { benchmarkFileDigest(b, "k12") }
