// Package config loads CLI settings from an optional dotenv file and the
// process environment.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sara-star-quant/hashgate/internal/constants"
	"github.com/sara-star-quant/hashgate/pkg/telemetry"
)

// Environment variable names.
const (
	EnvLogLevel  = constants.EnvPrefix + "LOG_LEVEL"
	EnvLogFormat = constants.EnvPrefix + "LOG_FORMAT"
	EnvTracing   = constants.EnvPrefix + "TRACING"
	EnvAlgorithm = constants.EnvPrefix + "ALGORITHM"
)

// Tracing modes.
const (
	TracingNone   = "none"
	TracingSimple = "simple"
	TracingOTel   = "otel"
)

// Config holds CLI settings. Values are kept as strings until Validate so
// flags can override them first.
type Config struct {
	LogLevel  string
	LogFormat string
	Tracing   string
	Algorithm string
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Tracing:   TracingNone,
		Algorithm: constants.SHA256,
	}
}

// Load starts from Defaults, applies envFile (when non-empty) and then the
// process environment. The process environment wins over the file, and
// the file is never written into the process environment.
func Load(envFile string) (Config, error) {
	cfg := Defaults()

	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		if err != nil {
			return cfg, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		cfg.apply(func(key string) (string, bool) {
			v, ok := vals[key]
			return v, ok
		})
	}
	cfg.apply(os.LookupEnv)

	return cfg, nil
}

func (c *Config) apply(lookup func(string) (string, bool)) {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(&c.LogLevel, EnvLogLevel)
	set(&c.LogFormat, EnvLogFormat)
	set(&c.Tracing, EnvTracing)
	set(&c.Algorithm, EnvAlgorithm)
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Format(); err != nil {
		return err
	}
	switch strings.ToLower(c.Tracing) {
	case TracingNone, TracingSimple, TracingOTel:
	default:
		return fmt.Errorf("invalid tracing mode: %s (use none, simple, or otel)", c.Tracing)
	}
	if c.Algorithm == "" {
		return fmt.Errorf("algorithm must not be empty")
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (telemetry.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return telemetry.LevelDebug, nil
	case "info":
		return telemetry.LevelInfo, nil
	case "warn", "warning":
		return telemetry.LevelWarn, nil
	case "error":
		return telemetry.LevelError, nil
	case "silent", "off", "none":
		return telemetry.LevelSilent, nil
	default:
		return telemetry.LevelInfo, fmt.Errorf("invalid log level: %s (use debug, info, warn, error, silent)", c.LogLevel)
	}
}

// Format parses LogFormat.
func (c Config) Format() (telemetry.Format, error) {
	switch strings.ToLower(c.LogFormat) {
	case "text":
		return telemetry.FormatText, nil
	case "json":
		return telemetry.FormatJSON, nil
	default:
		return telemetry.FormatText, fmt.Errorf("invalid log format: %s (use text or json)", c.LogFormat)
	}
}

// Logger builds the logger described by the config.
func (c Config) Logger(w io.Writer) (*telemetry.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	format, err := c.Format()
	if err != nil {
		return nil, err
	}
	return telemetry.NewLogger(
		telemetry.WithOutput(w),
		telemetry.WithLevel(level),
		telemetry.WithFormat(format),
		telemetry.WithFields(telemetry.Fields{"app": constants.ProductName}),
	), nil
}

// Tracer builds the tracer described by the config.
func (c Config) Tracer() (telemetry.Tracer, error) {
	switch strings.ToLower(c.Tracing) {
	case TracingNone:
		return telemetry.NoOpTracer{}, nil
	case TracingSimple:
		return telemetry.NewSimpleTracer(), nil
	case TracingOTel:
		if !telemetry.OTelEnabled() {
			return nil, fmt.Errorf("otel tracing not enabled (build with -tags otel)")
		}
		return telemetry.NewOTelTracer(constants.ProductName), nil
	default:
		return nil, fmt.Errorf("invalid tracing mode: %s (use none, simple, or otel)", c.Tracing)
	}
}
