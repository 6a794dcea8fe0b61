package hashlib

import (
	"crypto/subtle"
	"encoding"
	"encoding/hex"
	"hash"

	godigest "github.com/opencontainers/go-digest"

	qerrors "github.com/sara-star-quant/hashgate/internal/errors"
)

// Digest is a running hash computation for one algorithm.
// A Digest is not safe for concurrent use.
type Digest struct {
	name  string
	h     hash.Hash
	fresh func() (hash.Hash, error) // same algorithm and options, empty state
}

func newDigest(name string, h hash.Hash, fresh func() (hash.Hash, error)) *Digest {
	return &Digest{name: name, h: h, fresh: fresh}
}

// Name returns the canonical algorithm name.
func (d *Digest) Name() string { return d.name }

// Size returns the number of bytes Sum returns.
func (d *Digest) Size() int { return d.h.Size() }

// BlockSize returns the algorithm's underlying block size.
func (d *Digest) BlockSize() int { return d.h.BlockSize() }

// Hash exposes the underlying hash.Hash.
func (d *Digest) Hash() hash.Hash { return d.h }

// Update feeds more data into the digest. It fails only when the
// underlying implementation refuses input, as Go FIPS module digests do
// under fips140=only.
func (d *Digest) Update(p []byte) error {
	_, err := d.h.Write(p)
	return err
}

// Write implements io.Writer so a Digest can be used with io.Copy.
func (d *Digest) Write(p []byte) (int, error) {
	return d.h.Write(p)
}

// Sum returns the digest of the data written so far without changing state.
func (d *Digest) Sum() []byte {
	return d.h.Sum(nil)
}

// HexDigest returns Sum as lower-case hex.
func (d *Digest) HexDigest() string {
	return hex.EncodeToString(d.Sum())
}

// Reference returns the digest in OCI "algorithm:hex" form.
func (d *Digest) Reference() string {
	return godigest.NewDigestFromBytes(godigest.Algorithm(d.name), d.Sum()).String()
}

// Equal reports in constant time whether the current digest equals expected.
func (d *Digest) Equal(expected []byte) bool {
	return subtle.ConstantTimeCompare(d.Sum(), expected) == 1
}

// Reset discards all data written so far. Initial data passed through
// WithData is discarded as well.
func (d *Digest) Reset() {
	d.h.Reset()
}

// Copy returns an independent digest with the same state.
// Algorithms whose state cannot be exported (md4, ripemd160) return
// ErrNotCloneable.
func (d *Digest) Copy() (*Digest, error) {
	if c, ok := d.h.(hash.Cloner); ok {
		h, err := c.Clone()
		if err != nil {
			return nil, err
		}
		return newDigest(d.name, h, d.fresh), nil
	}

	m, ok := d.h.(encoding.BinaryMarshaler)
	if !ok || d.fresh == nil {
		return nil, qerrors.ErrNotCloneable
	}
	state, err := m.MarshalBinary()
	if err != nil {
		return nil, err
	}
	h, err := d.fresh()
	if err != nil {
		return nil, err
	}
	u, ok := h.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, qerrors.ErrNotCloneable
	}
	if err := u.UnmarshalBinary(state); err != nil {
		return nil, err
	}
	return newDigest(d.name, h, d.fresh), nil
}
