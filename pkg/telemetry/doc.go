// Package telemetry provides the logging and tracing primitives used across
// hashgate.
//
// # Structured Logging
//
// The Logger provides structured logging with levels:
//
//	logger := telemetry.NewLogger(
//		telemetry.WithLevel(telemetry.LevelDebug),
//		telemetry.WithFormat(telemetry.FormatJSON),
//		telemetry.WithFields(telemetry.Fields{"service": "hashgate"}),
//	)
//
//	logger.Named("registry").Debug("algorithm resolved", telemetry.Fields{
//		"algorithm": "md5",
//		"gated":     true,
//	})
//
// # Tracing
//
// Tracer is a minimal span interface. NoOpTracer is the default,
// SimpleTracer records spans in memory, and OTelTracer forwards to the
// global OpenTelemetry provider when built with -tags otel:
//
//	tracer := telemetry.NewOTelTracer("hashgate")
//	ctx, end := tracer.StartSpan(ctx, telemetry.SpanFileDigest)
//	defer end(nil) // or end(err) on error
package telemetry
