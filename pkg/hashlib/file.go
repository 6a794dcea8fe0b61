package hashlib

import (
	"context"
	"errors"
	"io"

	"github.com/sara-star-quant/hashgate/internal/constants"
	"github.com/sara-star-quant/hashgate/pkg/telemetry"
)

// FileDigest hashes everything read from rd with the named algorithm.
//
// Reads happen in chunks; ctx is checked before each read, so a
// cancelled context stops the digest at the next chunk boundary. The
// policy gate applies exactly as it does for New.
func (r *Registry) FileDigest(ctx context.Context, rd io.Reader, name string, opts ...Option) (d *Digest, err error) {
	attrs := telemetry.DigestAttributes{Algorithm: constants.NormalizeAlgorithm(name)}
	if src, serr := r.Source(name); serr == nil {
		// an unresolved name carries no provider; New reports the error
		attrs.Provider = src.Provider
		attrs.Gated = src.Gated
		attrs.Mode = r.Mode().String()
	}
	ctx, end := r.tracer.StartSpan(ctx, telemetry.SpanFileDigest, telemetry.WithAttributes(attrs.ToMap()))
	defer func() { end(err) }()

	d, err = r.New(name, opts...)
	if err != nil {
		return nil, err
	}

	n, err := copyContext(ctx, d, rd)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("stream digested", telemetry.Fields{
		"algorithm": d.Name(),
		"bytes":     n,
	})
	return d, nil
}

func copyContext(ctx context.Context, d *Digest, rd io.Reader) (int64, error) {
	buf := make([]byte, constants.FileChunkSize)
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, err := rd.Read(buf)
		if n > 0 {
			if _, werr := d.Write(buf[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
