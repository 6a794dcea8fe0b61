package provider

import (
	"fmt"
	"hash"
	"io"

	"github.com/cloudflare/circl/xof"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	xsha3 "golang.org/x/crypto/sha3"

	"github.com/sara-star-quant/hashgate/internal/constants"
	qerrors "github.com/sara-star-quant/hashgate/internal/errors"
)

// BuiltinProvider serves non-audited digest implementations.
type BuiltinProvider struct {
	table
}

var _ Provider = (*BuiltinProvider)(nil)

// Builtin returns the non-audited provider.
//
// Every implementation here sits outside the Go FIPS 140-3 module, md5
// included, so the gate is the only policy applied to them.
func Builtin() *BuiltinProvider {
	return &BuiltinProvider{
		table: table{
			name: "builtin",
			factories: map[string]factory{
				constants.MD5:       fixed(constants.MD5, constants.MD5Size, newMD5),
				constants.MD4:       fixed(constants.MD4, constants.MD4Size, md4.New),
				constants.RIPEMD160: fixed(constants.RIPEMD160, constants.RIPEMD160Size, ripemd160.New),
				constants.BLAKE2b:   newBLAKE2b,
				constants.BLAKE2s:   newBLAKE2s,
				constants.SHA3224:   fixed(constants.SHA3224, constants.SHA224Size, xsha3.New224),
				constants.SHA3256:   fixed(constants.SHA3256, constants.SHA256Size, xsha3.New256),
				constants.SHA3384:   fixed(constants.SHA3384, constants.SHA384Size, xsha3.New384),
				constants.SHA3512:   fixed(constants.SHA3512, constants.SHA512Size, xsha3.New512),
				constants.SHAKE128:  xShake(constants.SHAKE128, constants.SHAKE128DefaultSize, xsha3.NewShake128),
				constants.SHAKE256:  xShake(constants.SHAKE256, constants.SHAKE256DefaultSize, xsha3.NewShake256),
				constants.K12:       circlXOF(constants.K12, xof.K12D10, 128),
				constants.BLAKE2xb:  circlXOF(constants.BLAKE2xb, xof.BLAKE2XB, blake2b.BlockSize),
				constants.BLAKE2xs:  circlXOF(constants.BLAKE2xs, xof.BLAKE2XS, blake2s.BlockSize),
			},
		},
	}
}

func newBLAKE2b(o Options) (hash.Hash, error) {
	size := o.Size
	if size == 0 {
		size = constants.BLAKE2bMaxSize
	}
	if size < 1 || size > constants.BLAKE2bMaxSize {
		return nil, qerrors.NewOptionError("size", fmt.Sprintf("blake2b digests are 1..%d bytes", constants.BLAKE2bMaxSize))
	}
	if len(o.Key) > constants.BLAKE2bMaxKeySize {
		return nil, qerrors.NewOptionError("key", fmt.Sprintf("blake2b keys are at most %d bytes", constants.BLAKE2bMaxKeySize))
	}
	return blake2b.New(size, o.Key)
}

// newBLAKE2s follows x/crypto: 32-byte digests may be keyed or not,
// 16-byte digests require a key.
func newBLAKE2s(o Options) (hash.Hash, error) {
	if len(o.Key) > constants.BLAKE2sMaxKeySize {
		return nil, qerrors.NewOptionError("key", fmt.Sprintf("blake2s keys are at most %d bytes", constants.BLAKE2sMaxKeySize))
	}
	switch o.Size {
	case 0, blake2s.Size:
		return blake2s.New256(o.Key)
	case blake2s.Size128:
		if len(o.Key) == 0 {
			return nil, qerrors.NewOptionError("size", "16-byte blake2s digests require a key")
		}
		return blake2s.New128(o.Key)
	default:
		return nil, qerrors.NewOptionError("size", "blake2s digests are 16 or 32 bytes")
	}
}

func xShake(name string, def int, newShake func() xsha3.ShakeHash) factory {
	return func(o Options) (hash.Hash, error) {
		size, err := xofSize(name, o, def)
		if err != nil {
			return nil, err
		}
		s := newShake()
		return newXOFHash(xSponge{s: s}, size, s.BlockSize()), nil
	}
}

func circlXOF(name string, id xof.ID, blockSize int) factory {
	return func(o Options) (hash.Hash, error) {
		size, err := xofSize(name, o, constants.XOFDefaultSize)
		if err != nil {
			return nil, err
		}
		return newXOFHash(circlSponge{x: id.New()}, size, blockSize), nil
	}
}

// xSponge adapts golang.org/x/crypto/sha3.ShakeHash.
type xSponge struct {
	s xsha3.ShakeHash
}

func (x xSponge) Write(p []byte) (int, error) { return x.s.Write(p) }
func (x xSponge) Reset()                      { x.s.Reset() }

func (x xSponge) fork() (sponge, error) {
	return xSponge{s: x.s.Clone()}, nil
}

func (x xSponge) squeeze(p []byte) {
	_, _ = io.ReadFull(x.s, p)
}
