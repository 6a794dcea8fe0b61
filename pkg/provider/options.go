package provider

// Options carries per-call constructor configuration.
//
// UsedForSecurity is the caller's security-usage declaration. A nil pointer
// means the caller did not say, which policy code must read as true.
type Options struct {
	Data            []byte // Initial data written right after construction
	UsedForSecurity *bool  // Security-usage declaration; nil when absent
	Key             []byte // Key for keyed modes (blake2b, blake2s)
	Size            int    // Output size in bytes; 0 selects the default
}

// Option configures Options.
type Option func(*Options)

// WithData sets initial data to hash.
func WithData(data []byte) Option {
	return func(o *Options) {
		o.Data = data
	}
}

// UsedForSecurity declares whether the digest serves a security purpose.
func UsedForSecurity(v bool) Option {
	return func(o *Options) {
		o.UsedForSecurity = &v
	}
}

// WithKey sets the key for keyed digests.
func WithKey(key []byte) Option {
	return func(o *Options) {
		o.Key = key
	}
}

// WithSize selects the digest size for variable-length algorithms.
func WithSize(n int) Option {
	return func(o *Options) {
		o.Size = n
	}
}

// Apply builds Options from a list of Option values.
func Apply(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Security returns the declaration, defaulting to true when absent.
func (o Options) Security() bool {
	if o.UsedForSecurity == nil {
		return true
	}
	return *o.UsedForSecurity
}

// Declared reports whether the caller supplied a declaration at all.
func (o Options) Declared() bool {
	return o.UsedForSecurity != nil
}
