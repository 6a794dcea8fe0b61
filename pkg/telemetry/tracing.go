package telemetry

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Tracer provides distributed tracing capabilities.
// This interface allows plugging in different tracing backends.
type Tracer interface {
	// StartSpan starts a new span with the given name.
	// Returns a context containing the span and a function to end the span.
	StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, SpanEnder)
}

// SpanEnder is a function that ends a span.
// Call with nil error for success, or pass an error to mark the span as failed.
type SpanEnder func(err error)

// SpanOption configures span behavior.
type SpanOption func(*spanConfig)

type spanConfig struct {
	kind       SpanKind
	attributes map[string]interface{}
}

func newSpanConfig(opts []SpanOption) *spanConfig {
	cfg := &spanConfig{
		kind:       SpanKindInternal,
		attributes: make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// SpanKind identifies the type of span.
type SpanKind int

// SpanKindInternal is the default span kind; other values indicate server or client spans.
const (
	SpanKindInternal SpanKind = iota
	SpanKindServer
	SpanKindClient
)

// WithSpanKind sets the span kind.
func WithSpanKind(kind SpanKind) SpanOption {
	return func(c *spanConfig) {
		c.kind = kind
	}
}

// WithAttributes merges attributes into the span.
func WithAttributes(attrs map[string]interface{}) SpanOption {
	return func(c *spanConfig) {
		for k, v := range attrs {
			c.attributes[k] = v
		}
	}
}

// NoOpTracer is a tracer that does nothing.
type NoOpTracer struct{}

// StartSpan returns the context unchanged and a no-op end function.
func (NoOpTracer) StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, SpanEnder) {
	return ctx, func(err error) {}
}

// SimpleTracer records spans in memory. Useful for tests and the CLI's
// "simple" tracing mode.
type SimpleTracer struct {
	mu    sync.Mutex
	spans []RecordedSpan
}

// RecordedSpan represents a completed span.
type RecordedSpan struct {
	Name       string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Kind       SpanKind
	Attributes map[string]interface{}
	Error      error
	TraceID    string
	SpanID     string
	ParentID   string
}

// NewSimpleTracer creates a new SimpleTracer.
func NewSimpleTracer() *SimpleTracer {
	return &SimpleTracer{}
}

// StartSpan starts a new span.
func (t *SimpleTracer) StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, SpanEnder) {
	cfg := newSpanConfig(opts)

	span := &RecordedSpan{
		Name:       name,
		StartTime:  time.Now(),
		Kind:       cfg.kind,
		Attributes: cfg.attributes,
		TraceID:    newID(16),
		SpanID:     newID(8),
	}
	if parent := spanFromContext(ctx); parent != nil {
		span.ParentID = parent.SpanID
		span.TraceID = parent.TraceID
	}

	ctx = contextWithSpan(ctx, span)

	var once sync.Once
	return ctx, func(err error) {
		once.Do(func() {
			span.EndTime = time.Now()
			span.Duration = span.EndTime.Sub(span.StartTime)
			span.Error = err

			t.mu.Lock()
			t.spans = append(t.spans, *span)
			t.mu.Unlock()
		})
	}
}

// Spans returns all recorded spans.
func (t *SimpleTracer) Spans() []RecordedSpan {
	t.mu.Lock()
	defer t.mu.Unlock()
	result := make([]RecordedSpan, len(t.spans))
	copy(result, t.spans)
	return result
}

// Reset clears all recorded spans.
func (t *SimpleTracer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.spans = t.spans[:0]
}

type spanContextKey struct{}

func contextWithSpan(ctx context.Context, span *RecordedSpan) context.Context {
	return context.WithValue(ctx, spanContextKey{}, span)
}

func spanFromContext(ctx context.Context) *RecordedSpan {
	if span, ok := ctx.Value(spanContextKey{}).(*RecordedSpan); ok {
		return span
	}
	return nil
}

func newID(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b) // crypto/rand.Read does not fail on supported platforms
	return hex.EncodeToString(b)
}

// Standard span names for hashgate operations.
const (
	SpanFileDigest = "hashgate.file_digest"
)

// DigestAttributes describes a digest operation for tracers.
type DigestAttributes struct {
	Algorithm string
	Provider  string
	Gated     bool
	Mode      string
	Bytes     int64
}

// ToMap converts DigestAttributes to a generic map for use with tracers.
func (a DigestAttributes) ToMap() map[string]interface{} {
	m := make(map[string]interface{})
	if a.Algorithm != "" {
		m["digest.algorithm"] = a.Algorithm
	}
	if a.Provider != "" {
		m["digest.provider"] = a.Provider
	}
	if a.Mode != "" {
		m["fips.mode"] = a.Mode
	}
	if a.Gated {
		m["digest.gated"] = true
	}
	if a.Bytes > 0 {
		m["digest.bytes"] = a.Bytes
	}
	return m
}
