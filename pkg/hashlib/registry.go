package hashlib

import (
	"sort"
	"sync"

	"github.com/sara-star-quant/hashgate/internal/constants"
	qerrors "github.com/sara-star-quant/hashgate/internal/errors"
	"github.com/sara-star-quant/hashgate/pkg/fips"
	"github.com/sara-star-quant/hashgate/pkg/provider"
	"github.com/sara-star-quant/hashgate/pkg/telemetry"
)

// Source describes how a Registry serves an algorithm.
type Source struct {
	Algorithm string // Canonical algorithm name
	Provider  string // Name of the serving provider
	Audited   bool   // Served by the audited provider
	Gated     bool   // Wrapped by Guard because compliance mode is active
}

// Registry resolves algorithm names to constructors and caches the result.
//
// The compliance mode is queried once, on first resolution, and every
// algorithm is resolved at most once. Both decisions are final for the
// lifetime of the Registry. A Registry is safe for concurrent use.
type Registry struct {
	audited   provider.Audited
	builtin   provider.Provider
	logger    *telemetry.Logger
	tracer    telemetry.Tracer
	modeQuery func() (fips.Mode, error)

	mode func() fips.Mode

	mu    sync.Mutex
	cells map[string]*cell
}

// cell memoizes the resolution of one algorithm.
type cell struct {
	once   sync.Once
	ctor   Constructor
	source Source
	err    error
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithAudited sets the audited provider. The default is provider.Stdlib().
func WithAudited(p provider.Audited) RegistryOption {
	return func(r *Registry) {
		r.audited = p
	}
}

// WithoutAudited removes the audited provider; the mode is then inactive
// unless WithModeQuery says otherwise.
func WithoutAudited() RegistryOption {
	return func(r *Registry) {
		r.audited = nil
	}
}

// WithBuiltin sets the non-audited provider. The default is
// provider.Builtin(); nil disables builtin digests.
func WithBuiltin(p provider.Provider) RegistryOption {
	return func(r *Registry) {
		r.builtin = p
	}
}

// WithLogger sets the logger used for resolution events.
func WithLogger(l *telemetry.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// WithTracer sets the tracer used by FileDigest.
func WithTracer(t telemetry.Tracer) RegistryOption {
	return func(r *Registry) {
		r.tracer = t
	}
}

// WithModeQuery replaces the audited provider's mode query. It is consulted
// even when no audited provider is configured.
func WithModeQuery(q func() (fips.Mode, error)) RegistryOption {
	return func(r *Registry) {
		r.modeQuery = q
	}
}

// New creates a Registry backed by the Go FIPS module and the builtin
// provider unless options say otherwise.
func New(opts ...RegistryOption) *Registry {
	r := &Registry{
		audited: provider.Stdlib(),
		builtin: provider.Builtin(),
		logger:  telemetry.NullLogger(),
		tracer:  telemetry.NoOpTracer{},
		cells:   make(map[string]*cell),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = telemetry.NullLogger()
	}
	if r.tracer == nil {
		r.tracer = telemetry.NoOpTracer{}
	}
	r.logger = r.logger.Named("registry")
	r.mode = sync.OnceValue(r.resolveMode)
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry { return New() })

// Default returns a process-wide Registry with default options.
// Prefer constructing a Registry and passing it explicitly.
func Default() *Registry {
	return defaultRegistry()
}

// Mode returns the compliance mode, querying it on first use.
func (r *Registry) Mode() fips.Mode {
	return r.mode()
}

func (r *Registry) resolveMode() fips.Mode {
	query := r.modeQuery
	if query == nil {
		if r.audited == nil {
			r.logger.Debug("compliance mode resolved", telemetry.Fields{
				"mode":   fips.ModeInactive.String(),
				"reason": qerrors.ErrProviderUnavailable.Error(),
			})
			return fips.ModeInactive
		}
		query = r.audited.Mode
	}

	m, err := query()
	if err != nil {
		r.logger.Warn("compliance mode query failed, treating as inactive", telemetry.Fields{
			"error": err.Error(),
		})
		return fips.ModeInactive
	}

	resolved := fips.Normalize(m)
	if resolved != m {
		r.logger.Warn("compliance mode neither active nor inactive, treating as inactive", telemetry.Fields{
			"reported": int(m),
		})
	}
	r.logger.Debug("compliance mode resolved", telemetry.Fields{"mode": resolved.String()})
	return resolved
}

// Constructor returns the constructor for name, resolving it on first use.
// Unknown names fail with a *ResolveError wrapping ErrUnsupportedAlgorithm,
// and keep failing the same way on later calls.
func (r *Registry) Constructor(name string) (Constructor, error) {
	c := r.cell(name)
	return c.ctor, c.err
}

// Source reports which provider serves name and whether it is gated.
func (r *Registry) Source(name string) (Source, error) {
	c := r.cell(name)
	return c.source, c.err
}

// New constructs a digest for name.
func (r *Registry) New(name string, opts ...Option) (*Digest, error) {
	ctor, err := r.Constructor(name)
	if err != nil {
		return nil, err
	}
	return ctor(opts...)
}

func (r *Registry) cell(name string) *cell {
	alg := constants.NormalizeAlgorithm(name)

	r.mu.Lock()
	c, ok := r.cells[alg]
	if !ok {
		c = &cell{}
		r.cells[alg] = c
	}
	r.mu.Unlock()

	c.once.Do(func() { r.resolve(alg, c) })
	return c
}

func (r *Registry) resolve(alg string, c *cell) {
	switch {
	case alg == "":
		c.err = qerrors.NewResolveError(alg, qerrors.ErrUnsupportedAlgorithm)

	case r.audited != nil && r.audited.Supports(alg):
		// audited providers enforce the policy themselves
		c.ctor = bind(alg, r.audited)
		c.source = Source{Algorithm: alg, Provider: r.audited.Name(), Audited: true}

	case r.builtin != nil && r.builtin.Supports(alg):
		c.ctor = bind(alg, r.builtin)
		c.source = Source{Algorithm: alg, Provider: r.builtin.Name()}
		if r.Mode().Active() {
			c.ctor = Guard(alg, c.ctor)
			c.source.Gated = true
		}

	default:
		c.err = qerrors.NewResolveError(alg, qerrors.ErrUnsupportedAlgorithm)
	}

	if c.err != nil {
		r.logger.Debug("digest constructor unresolved", telemetry.Fields{"algorithm": alg})
		return
	}
	r.logger.Debug("digest constructor resolved", telemetry.Fields{
		"algorithm": alg,
		"provider":  c.source.Provider,
		"gated":     c.source.Gated,
	})
}

// Available returns the sorted names served by the configured providers.
func (r *Registry) Available() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, p := range r.providers() {
		for _, name := range p.Algorithms() {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Guaranteed returns the names every default Registry serves.
func Guaranteed() []string {
	return constants.Guaranteed()
}

func (r *Registry) providers() []provider.Provider {
	var ps []provider.Provider
	if r.audited != nil {
		ps = append(ps, r.audited)
	}
	if r.builtin != nil {
		ps = append(ps, r.builtin)
	}
	return ps
}

// SelfTest runs the known-answer vectors of every configured provider.
// Failures are logged at error level and reported in the results.
func (r *Registry) SelfTest() []*provider.SelfTestResult {
	var results []*provider.SelfTestResult
	for _, p := range r.providers() {
		res := provider.SelfTest(p)
		if !res.Passed {
			r.logger.Error("provider self-test failed", telemetry.Fields{
				"provider": res.Provider,
				"errors":   res.Errors,
			})
		}
		results = append(results, res)
	}
	return results
}
