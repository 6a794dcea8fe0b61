package hashlib

import (
	"hash"

	qerrors "github.com/sara-star-quant/hashgate/internal/errors"
	"github.com/sara-star-quant/hashgate/pkg/provider"
)

// Constructor builds a Digest for one algorithm.
type Constructor func(opts ...Option) (*Digest, error)

// Guard wraps a non-audited constructor so that it refuses security use.
//
// The returned constructor reads the security-usage declaration from opts.
// A missing declaration counts as true. True fails with a *PolicyError
// naming algorithm before next is called; false forwards opts to next
// unchanged. Guard performs no logging and keeps no state.
func Guard(algorithm string, next Constructor) Constructor {
	return func(opts ...Option) (*Digest, error) {
		if provider.Apply(opts...).Security() {
			return nil, qerrors.NewPolicyError(algorithm)
		}
		return next(opts...)
	}
}

// bind returns the unguarded constructor for algorithm on p.
func bind(algorithm string, p provider.Provider) Constructor {
	return func(opts ...Option) (*Digest, error) {
		o := provider.Apply(opts...)
		h, err := p.New(algorithm, o)
		if err != nil {
			return nil, err
		}
		if len(o.Data) > 0 {
			if _, err := h.Write(o.Data); err != nil {
				return nil, err
			}
		}
		return newDigest(algorithm, h, freshFunc(algorithm, p, o)), nil
	}
}

func freshFunc(algorithm string, p provider.Provider, o provider.Options) func() (hash.Hash, error) {
	return func() (hash.Hash, error) {
		return p.New(algorithm, o)
	}
}
