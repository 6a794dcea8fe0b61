package hashlib_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sara-star-quant/hashgate/pkg/hashlib"
	"github.com/sara-star-quant/hashgate/pkg/telemetry"
)

func TestFileDigestMatchesOneShot(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 40000) // spans several chunks
	tracer := telemetry.NewSimpleTracer()
	reg := activeRegistry(hashlib.WithTracer(tracer))

	d, err := reg.FileDigest(context.Background(), bytes.NewReader(data), "blake2b", hashlib.UsedForSecurity(false))
	if err != nil {
		t.Fatalf("FileDigest failed: %v", err)
	}
	want, err := reg.New("blake2b", hashlib.UsedForSecurity(false), hashlib.WithData(data))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d.Sum(), want.Sum()) {
		t.Error("streamed digest differs from one-shot digest")
	}

	spans := tracer.Spans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != telemetry.SpanFileDigest || spans[0].Error != nil {
		t.Errorf("unexpected span %+v", spans[0])
	}
	if spans[0].Attributes["digest.algorithm"] != "blake2b" || spans[0].Attributes["digest.gated"] != true {
		t.Errorf("unexpected attributes %v", spans[0].Attributes)
	}
}

func TestFileDigestGated(t *testing.T) {
	tracer := telemetry.NewSimpleTracer()
	reg := activeRegistry(hashlib.WithTracer(tracer))

	_, err := reg.FileDigest(context.Background(), bytes.NewReader([]byte("x")), "md5")
	if !errors.Is(err, hashlib.ErrUsedForSecurity) {
		t.Fatalf("expected ErrUsedForSecurity, got %v", err)
	}
	if spans := tracer.Spans(); len(spans) != 1 || !errors.Is(spans[0].Error, hashlib.ErrUsedForSecurity) {
		t.Error("span should record the policy error")
	}
}

func TestFileDigestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inactiveRegistry().FileDigest(ctx, bytes.NewReader([]byte("data")), "sha256")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestFileDigestReadError(t *testing.T) {
	readErr := errors.New("disk on fire")
	_, err := inactiveRegistry().FileDigest(context.Background(), failingReader{readErr}, "sha256")
	if !errors.Is(err, readErr) {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestFileDigestEmpty(t *testing.T) {
	d, err := inactiveRegistry().FileDigest(context.Background(), io.LimitReader(nil, 0), "md5")
	if err != nil {
		t.Fatal(err)
	}
	if d.HexDigest() != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("empty md5 = %s", d.HexDigest())
	}
}

func TestFileDigestUnknownAlgorithmSpan(t *testing.T) {
	tracer := telemetry.NewSimpleTracer()
	reg := inactiveRegistry(hashlib.WithTracer(tracer))

	_, err := reg.FileDigest(context.Background(), bytes.NewReader([]byte("x")), "Whirlpool")
	if !errors.Is(err, hashlib.ErrUnsupportedAlgorithm) {
		t.Fatalf("expected ErrUnsupportedAlgorithm, got %v", err)
	}

	spans := tracer.Spans()
	if len(spans) != 1 || !errors.Is(spans[0].Error, hashlib.ErrUnsupportedAlgorithm) {
		t.Fatalf("unexpected spans %+v", spans)
	}
	attrs := spans[0].Attributes
	if attrs["digest.algorithm"] != "whirlpool" {
		t.Errorf("digest.algorithm = %v", attrs["digest.algorithm"])
	}
	if _, ok := attrs["digest.provider"]; ok {
		t.Error("an unresolved name should carry no provider")
	}
}
