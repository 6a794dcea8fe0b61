// Package hashlib hands out digest constructors by algorithm name and
// enforces the FIPS usage policy on the ones that are not audited.
//
// # Providers
//
// A Registry consults two providers. The audited provider (by default the
// Go FIPS 140-3 module) is preferred and is trusted to enforce compliance
// itself. Names it does not serve fall through to the builtin provider
// (a bundled md5, golang.org/x/crypto, circl), whose implementations know
// nothing about compliance.
//
// # The gate
//
// When the audited provider reports FIPS mode, every builtin constructor is
// wrapped by Guard. A guarded constructor only runs when the caller
// declares the digest is not used for security:
//
//	reg := hashlib.New()
//
//	// fails with ErrUsedForSecurity in FIPS mode
//	d, err := reg.New("md5", hashlib.WithData(data))
//
//	// allowed: content addressing, not security
//	d, err = reg.New("md5", hashlib.WithData(data), hashlib.UsedForSecurity(false))
//
// Omitting UsedForSecurity is the same as passing true.
//
// The mode is read once per Registry and each algorithm is resolved once,
// so the gating decision for a name never changes during a Registry's life.
// Tests build one Registry per mode with WithModeQuery or a custom
// audited provider.
package hashlib
