package hashlib_test

import (
	"crypto/sha256"
	"errors"
	"hash"
	"sync"
	"sync/atomic"

	"github.com/sara-star-quant/hashgate/internal/constants"
	qerrors "github.com/sara-star-quant/hashgate/internal/errors"
	"github.com/sara-star-quant/hashgate/pkg/fips"
	"github.com/sara-star-quant/hashgate/pkg/hashlib"
	"github.com/sara-star-quant/hashgate/pkg/provider"
)

func modeQuery(m fips.Mode, err error) func() (fips.Mode, error) {
	return func() (fips.Mode, error) { return m, err }
}

func activeRegistry(opts ...hashlib.RegistryOption) *hashlib.Registry {
	return hashlib.New(append([]hashlib.RegistryOption{hashlib.WithModeQuery(modeQuery(fips.ModeActive, nil))}, opts...)...)
}

func inactiveRegistry(opts ...hashlib.RegistryOption) *hashlib.Registry {
	return hashlib.New(append([]hashlib.RegistryOption{hashlib.WithModeQuery(modeQuery(fips.ModeInactive, nil))}, opts...)...)
}

// fakeAudited is an audited provider that serves sha256 only and records
// what it was asked.
type fakeAudited struct {
	mode    fips.Mode
	err     error
	queries atomic.Int32

	mu   sync.Mutex
	seen []provider.Options
}

var _ provider.Audited = (*fakeAudited)(nil)

func (f *fakeAudited) Name() string { return "fake-audited" }

func (f *fakeAudited) Supports(alg string) bool { return alg == constants.SHA256 }

func (f *fakeAudited) Algorithms() []string { return []string{constants.SHA256} }

func (f *fakeAudited) New(alg string, o provider.Options) (hash.Hash, error) {
	if alg != constants.SHA256 {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	f.mu.Lock()
	f.seen = append(f.seen, o)
	f.mu.Unlock()
	return sha256.New(), nil
}

func (f *fakeAudited) Mode() (fips.Mode, error) {
	f.queries.Add(1)
	return f.mode, f.err
}

func (f *fakeAudited) lastOptions() provider.Options {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen[len(f.seen)-1]
}

// countingProvider counts lookups and constructions on a wrapped provider.
type countingProvider struct {
	provider.Provider
	supports atomic.Int32
	news     atomic.Int32
}

func (c *countingProvider) Supports(alg string) bool {
	c.supports.Add(1)
	return c.Provider.Supports(alg)
}

func (c *countingProvider) New(alg string, o provider.Options) (hash.Hash, error) {
	c.news.Add(1)
	return c.Provider.New(alg, o)
}

var errRefusedWrite = errors.New("write refused")

// refusingProvider hands out hashes whose Write always fails, as Go FIPS
// module digests do under fips140=only.
type refusingProvider struct{ provider.Provider }

func (r refusingProvider) New(alg string, o provider.Options) (hash.Hash, error) {
	h, err := r.Provider.New(alg, o)
	if err != nil {
		return nil, err
	}
	return refusingHash{h}, nil
}

type refusingHash struct{ hash.Hash }

func (refusingHash) Write([]byte) (int, error) { return 0, errRefusedWrite }
