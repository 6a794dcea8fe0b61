// Package hashgate provides digest constructors that honor the FIPS 140-3
// "usedforsecurity" policy.
//
// Digests served by the Go FIPS 140-3 module are passed through untouched.
// Digests served by non-validated implementations (md5, md4, ripemd160,
// blake2, KangarooTwelve and friends) are wrapped by a gate while the
// process runs in FIPS mode: a call must declare that the digest is not
// used for security, or it is rejected before the digest is created.
//
// # Quick Start
//
//	import "github.com/sara-star-quant/hashgate/pkg/hashlib"
//
//	reg := hashlib.New()
//
//	// Always allowed: served by the FIPS module
//	d, _ := reg.New("sha3-256", hashlib.WithData(payload))
//	fmt.Println(d.HexDigest())
//
//	// Allowed in FIPS mode only with an explicit declaration
//	etag, err := reg.New("md5", hashlib.UsedForSecurity(false))
//
//	// Rejected in FIPS mode
//	_, err = reg.New("md5")
//	errors.Is(err, hashlib.ErrUsedForSecurity) // true
//
// # Package Structure
//
//   - pkg/hashlib: Registry, gate, Digest and streaming FileDigest
//   - pkg/provider: audited (Go FIPS module) and builtin digest providers
//   - pkg/fips: compliance mode detection
//   - pkg/telemetry: structured logging and tracing
//   - pkg/version: version information
//   - internal/config: CLI settings from flags, env and dotenv files
//   - internal/constants: algorithm names and sizes
//   - internal/errors: sentinel errors and typed wrappers
//
// # Compliance Mode
//
// The mode is read once per Registry, from the audited provider, the first
// time a builtin algorithm is resolved. Build with -tags fips, or run with
// GODEBUG=fips140=on, to enable it:
//
//	GODEBUG=fips140=on hashgate sum -a md5 file          # rejected
//	GODEBUG=fips140=on hashgate sum -a md5 --not-for-security file
//
// # Testing
//
//	go test ./...                                                 # All tests
//	go test -fuzz=FuzzXOFPrefix ./pkg/provider/                   # Fuzz tests
//	go test -bench=. ./pkg/hashlib/                               # Benchmarks
//	go test -tags otel ./pkg/telemetry/                           # OpenTelemetry adapter
//	GODEBUG=fips140=on go test ./...                              # Under FIPS mode
//	go test -run TestFIPS140Only ./pkg/hashlib/                   # Under fips140=only (subprocess)
package hashgate
