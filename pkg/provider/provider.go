// Package provider implements the digest providers behind hashlib.
//
// Two providers ship with the module:
//
//   - Stdlib: the audited provider, backed by the Go FIPS 140-3 module
//     (crypto/sha1, crypto/sha256, crypto/sha512, crypto/sha3). It answers
//     the compliance-mode query and enforces its own policy internally;
//     under fips140=only it refuses sha1 with ErrRefusedByRuntime.
//   - Builtin: non-audited implementations bundled with the module
//     (an RFC 1321 md5, golang.org/x/crypto, github.com/cloudflare/circl/xof).
//     Nothing inside these checks the compliance mode, which is why
//     hashlib gates them.
//
// Providers construct fresh hash.Hash values; they never write
// Options.Data, that is left to the caller.
package provider

import (
	"fmt"
	"hash"
	"sort"

	"github.com/sara-star-quant/hashgate/internal/constants"
	qerrors "github.com/sara-star-quant/hashgate/internal/errors"
	"github.com/sara-star-quant/hashgate/pkg/fips"
)

// Provider constructs digests for a fixed set of algorithm names.
type Provider interface {
	// Name identifies the provider in logs and CLI output.
	Name() string

	// Supports reports whether the provider can serve algorithm.
	Supports(algorithm string) bool

	// Algorithms returns the sorted names the provider serves.
	Algorithms() []string

	// New constructs a fresh hash for algorithm, validating o.
	// Unknown names return ErrUnsupportedAlgorithm.
	New(algorithm string, o Options) (hash.Hash, error)
}

// Audited is a Provider that enforces compliance restrictions itself and can
// report its current compliance mode.
type Audited interface {
	Provider

	// Mode queries the provider's compliance mode. Implementations return
	// an error when the query is unsupported.
	Mode() (fips.Mode, error)
}

// factory builds one algorithm from validated options.
type factory func(o Options) (hash.Hash, error)

// table is a name -> factory map shared by the concrete providers.
type table struct {
	name      string
	factories map[string]factory
}

func (t *table) Name() string {
	return t.name
}

func (t *table) Supports(algorithm string) bool {
	_, ok := t.factories[algorithm]
	return ok
}

func (t *table) Algorithms() []string {
	names := make([]string, 0, len(t.factories))
	for name := range t.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *table) New(algorithm string, o Options) (hash.Hash, error) {
	f, ok := t.factories[algorithm]
	if !ok {
		return nil, fmt.Errorf("%s provider: %w: %s", t.name, qerrors.ErrUnsupportedAlgorithm, algorithm)
	}
	return f(o)
}

// fixed wraps a constructor for an unkeyed, fixed-size algorithm.
func fixed(name string, size int, newHash func() hash.Hash) factory {
	return func(o Options) (hash.Hash, error) {
		if len(o.Key) > 0 {
			return nil, qerrors.NewOptionError("key", name+" is not a keyed algorithm")
		}
		if o.Size != 0 && o.Size != size {
			return nil, qerrors.NewOptionError("size", fmt.Sprintf("%s digests are %d bytes", name, size))
		}
		return newHash(), nil
	}
}

// xofSize resolves an XOF output length.
func xofSize(name string, o Options, def int) (int, error) {
	if len(o.Key) > 0 {
		return 0, qerrors.NewOptionError("key", name+" is not a keyed algorithm")
	}
	switch {
	case o.Size == 0:
		return def, nil
	case o.Size < 0 || o.Size > constants.XOFMaxSize:
		return 0, qerrors.NewOptionError("size", fmt.Sprintf("%s output must be 1..%d bytes", name, constants.XOFMaxSize))
	default:
		return o.Size, nil
	}
}
