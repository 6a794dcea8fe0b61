package provider

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha3"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"

	"github.com/sara-star-quant/hashgate/internal/constants"
	qerrors "github.com/sara-star-quant/hashgate/internal/errors"
	"github.com/sara-star-quant/hashgate/pkg/fips"
)

// StdlibProvider is the audited provider backed by the Go FIPS 140-3
// cryptographic module.
//
// The security-usage declaration is accepted and not inspected: in
// fips140=only mode the module itself rejects non-approved use, and New
// reports that refusal as ErrRefusedByRuntime.
type StdlibProvider struct {
	table
	mode   func() fips.Mode
	strict func() bool
}

// strictRefused lists what the Go FIPS module fails at Write or Sum time
// under fips140=only.
var strictRefused = map[string]bool{
	constants.SHA1: true,
}

var _ Audited = (*StdlibProvider)(nil)

// Stdlib returns the audited provider. Its mode follows fips.Enabled.
func Stdlib() *StdlibProvider {
	return &StdlibProvider{
		table: table{
			name: "go-fips140",
			factories: map[string]factory{
				constants.SHA1:      fixed(constants.SHA1, constants.SHA1Size, sha1.New),
				constants.SHA224:    fixed(constants.SHA224, constants.SHA224Size, sha256.New224),
				constants.SHA256:    fixed(constants.SHA256, constants.SHA256Size, sha256.New),
				constants.SHA384:    fixed(constants.SHA384, constants.SHA384Size, sha512.New384),
				constants.SHA512:    fixed(constants.SHA512, constants.SHA512Size, sha512.New),
				constants.SHA512224: fixed(constants.SHA512224, constants.SHA224Size, sha512.New512_224),
				constants.SHA512256: fixed(constants.SHA512256, constants.SHA256Size, sha512.New512_256),
				constants.SHA3224:   fixed(constants.SHA3224, constants.SHA224Size, func() hash.Hash { return sha3.New224() }),
				constants.SHA3256:   fixed(constants.SHA3256, constants.SHA256Size, func() hash.Hash { return sha3.New256() }),
				constants.SHA3384:   fixed(constants.SHA3384, constants.SHA384Size, func() hash.Hash { return sha3.New384() }),
				constants.SHA3512:   fixed(constants.SHA3512, constants.SHA512Size, func() hash.Hash { return sha3.New512() }),
				constants.SHAKE128:  stdShake(constants.SHAKE128, constants.SHAKE128DefaultSize, sha3.NewSHAKE128),
				constants.SHAKE256:  stdShake(constants.SHAKE256, constants.SHAKE256DefaultSize, sha3.NewSHAKE256),
			},
		},
		mode:   func() fips.Mode { return fips.FromBool(fips.Enabled()) },
		strict: fips.Strict,
	}
}

// New constructs algorithm, refusing up front what the runtime would
// refuse later.
func (p *StdlibProvider) New(algorithm string, o Options) (hash.Hash, error) {
	if strictRefused[algorithm] && p.strict() {
		return nil, fmt.Errorf("%s provider: %w: %s", p.name, qerrors.ErrRefusedByRuntime, algorithm)
	}
	return p.table.New(algorithm, o)
}

// Mode reports the Go module's FIPS 140-3 state.
func (p *StdlibProvider) Mode() (fips.Mode, error) {
	return p.mode(), nil
}

func stdShake(name string, def int, newShake func() *sha3.SHAKE) factory {
	return func(o Options) (hash.Hash, error) {
		size, err := xofSize(name, o, def)
		if err != nil {
			return nil, err
		}
		s := newShake()
		return newXOFHash(&stdSponge{s: s, newShake: newShake}, size, s.BlockSize()), nil
	}
}

// stdSponge adapts crypto/sha3.SHAKE, which forks through its binary
// marshaling rather than a Clone method.
type stdSponge struct {
	s        *sha3.SHAKE
	newShake func() *sha3.SHAKE
}

func (s *stdSponge) Write(p []byte) (int, error) { return s.s.Write(p) }
func (s *stdSponge) Reset()                      { s.s.Reset() }

func (s *stdSponge) fork() (sponge, error) {
	state, err := s.s.MarshalBinary()
	if err != nil {
		return nil, err
	}
	c := s.newShake()
	if err := c.UnmarshalBinary(state); err != nil {
		return nil, err
	}
	return &stdSponge{s: c, newShake: s.newShake}, nil
}

func (s *stdSponge) squeeze(p []byte) {
	_, _ = io.ReadFull(s.s, p)
}
