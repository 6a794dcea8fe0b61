// Package constants defines algorithm identifiers, digest sizes and tuning
// parameters shared by the hashgate packages.
//
// Algorithm names follow the canonical lower-case, underscore-separated form
// used by hashlib-style APIs ("sha3_256", "shake_128", "blake2b").
package constants

import "strings"

// Product identification
const (
	// ProductName is used in version strings and default tracer names
	ProductName = "hashgate"

	// EnvPrefix prefixes every environment variable read by the CLI
	EnvPrefix = "HASHGATE_"
)

// Algorithm identifiers served by the audited provider (Go FIPS 140-3 module)
const (
	SHA1      = "sha1"
	SHA224    = "sha224"
	SHA256    = "sha256"
	SHA384    = "sha384"
	SHA512    = "sha512"
	SHA512224 = "sha512_224"
	SHA512256 = "sha512_256"
	SHA3224   = "sha3_224"
	SHA3256   = "sha3_256"
	SHA3384   = "sha3_384"
	SHA3512   = "sha3_512"
	SHAKE128  = "shake_128"
	SHAKE256  = "shake_256"
)

// Algorithm identifiers only available from builtin implementations
const (
	MD5       = "md5"
	MD4       = "md4"
	RIPEMD160 = "ripemd160"
	BLAKE2b   = "blake2b"
	BLAKE2s   = "blake2s"
	BLAKE2xb  = "blake2xb"
	BLAKE2xs  = "blake2xs"
	K12       = "k12"
)

// Digest sizes in bytes
const (
	MD4Size       = 16
	MD5Size       = 16
	SHA1Size      = 20
	RIPEMD160Size = 20
	SHA224Size    = 28
	SHA256Size    = 32
	SHA384Size    = 48
	SHA512Size    = 64

	// BLAKE2bMaxSize is the largest blake2b digest and its default size
	BLAKE2bMaxSize = 64

	// BLAKE2sMaxSize is the largest blake2s digest and its default size
	BLAKE2sMaxSize = 32

	// BLAKE2bMaxKeySize and BLAKE2sMaxKeySize bound keyed-mode keys
	BLAKE2bMaxKeySize = 64
	BLAKE2sMaxKeySize = 32

	// SHAKE128DefaultSize and SHAKE256DefaultSize are the output lengths used
	// when a caller does not choose one (full security strength)
	SHAKE128DefaultSize = 32
	SHAKE256DefaultSize = 64

	// XOFDefaultSize is the default output length for k12 and blake2x
	XOFDefaultSize = 32

	// XOFMaxSize caps requested XOF output lengths
	XOFMaxSize = 1 << 16
)

// Streaming parameters
const (
	// FileChunkSize is the read size used when digesting a stream
	FileChunkSize = 256 * 1024
)

// guaranteed lists the names available on every platform regardless of
// which providers are configured.
var guaranteed = []string{
	BLAKE2b, BLAKE2s, MD5, SHA1, SHA224, SHA256, SHA384, SHA3224,
	SHA3256, SHA3384, SHA3512, SHA512, SHAKE128, SHAKE256,
}

// Guaranteed returns a sorted copy of the always-available algorithm names.
func Guaranteed() []string {
	out := make([]string, len(guaranteed))
	copy(out, guaranteed)
	return out
}

// NormalizeAlgorithm maps user-supplied spellings onto canonical identifiers:
// "SHA-256" -> "sha256", "SHA3-256" -> "sha3_256", "SHAKE128" -> "shake_128".
func NormalizeAlgorithm(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")

	switch {
	case strings.HasPrefix(n, "sha_"):
		// sha_256 -> sha256, sha_512_256 -> sha512_256
		n = "sha" + strings.TrimPrefix(n, "sha_")
	case strings.HasPrefix(n, "shake") && !strings.HasPrefix(n, "shake_"):
		n = "shake_" + strings.TrimPrefix(n, "shake")
	case strings.HasPrefix(n, "sha3") && len(n) == 7:
		// sha3256 -> sha3_256; sha384 is six bytes and left alone
		n = "sha3_" + n[4:]
	}
	if n == "sha512/224" {
		n = SHA512224
	}
	if n == "sha512/256" {
		n = SHA512256
	}
	return n
}

// IsFIPSApproved returns true if the algorithm is approved for security use
// under FIPS 140-3. Approval says nothing about which implementation serves
// the name; builtin implementations are never validated.
func IsFIPSApproved(name string) bool {
	switch NormalizeAlgorithm(name) {
	case SHA1, SHA224, SHA256, SHA384, SHA512, SHA512224, SHA512256,
		SHA3224, SHA3256, SHA3384, SHA3512, SHAKE128, SHAKE256:
		return true
	default:
		return false
	}
}
