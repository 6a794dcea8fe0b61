package hashlib

import (
	"encoding/hex"
	"fmt"
	"strings"

	godigest "github.com/opencontainers/go-digest"

	"github.com/sara-star-quant/hashgate/internal/constants"
)

// ParseReference splits an "algorithm:hex" reference, as produced by
// Digest.Reference, into a canonical algorithm name and the raw sum.
// The algorithm is not checked against any registry.
func ParseReference(ref string) (algorithm string, sum []byte, err error) {
	if !strings.Contains(ref, ":") {
		return "", nil, fmt.Errorf("%w: %q", godigest.ErrDigestInvalidFormat, ref)
	}

	d := godigest.Digest(ref)
	algorithm = constants.NormalizeAlgorithm(string(d.Algorithm()))
	if algorithm == "" {
		return "", nil, fmt.Errorf("%w: %q", godigest.ErrDigestInvalidFormat, ref)
	}
	sum, err = hex.DecodeString(d.Encoded())
	if err != nil || len(sum) == 0 {
		return "", nil, fmt.Errorf("%w: %q", godigest.ErrDigestInvalidFormat, ref)
	}
	return algorithm, sum, nil
}
