package hashlib

import "github.com/sara-star-quant/hashgate/pkg/provider"

// Option configures a single constructor call.
type Option = provider.Option

// WithData hashes data immediately after construction.
func WithData(data []byte) Option {
	return provider.WithData(data)
}

// UsedForSecurity declares whether the digest serves a security purpose.
// Omitting the declaration is the same as declaring true.
func UsedForSecurity(v bool) Option {
	return provider.UsedForSecurity(v)
}

// WithKey sets the key for keyed blake2 digests.
func WithKey(key []byte) Option {
	return provider.WithKey(key)
}

// WithSize selects the output size of blake2 and extendable-output digests.
func WithSize(n int) Option {
	return provider.WithSize(n)
}
