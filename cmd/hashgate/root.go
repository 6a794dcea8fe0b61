package main

import (
	"github.com/spf13/cobra"

	"github.com/sara-star-quant/hashgate/internal/config"
	"github.com/sara-star-quant/hashgate/pkg/hashlib"
	"github.com/sara-star-quant/hashgate/pkg/telemetry"
)

// rootOptions holds the global flags.
type rootOptions struct {
	envFile   string
	logLevel  string
	logFormat string
	tracing   string
}

// app is the state shared by subcommands once flags and env are resolved.
type app struct {
	cfg      config.Config
	logger   *telemetry.Logger
	tracer   telemetry.Tracer
	registry *hashlib.Registry
}

func newRootCommand(regOpts ...hashlib.RegistryOption) *cobra.Command {
	ro := &rootOptions{}
	a := &app{}

	cmd := &cobra.Command{
		Use:           "hashgate",
		Short:         "Compute digests under the FIPS usedforsecurity policy.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, ro, regOpts)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.reportSpans()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&ro.envFile, "env-file", "", "dotenv file with HASHGATE_* settings")
	flags.StringVar(&ro.logLevel, "log-level", "", "log level: debug, info, warn, error, silent")
	flags.StringVar(&ro.logFormat, "log-format", "", "log format: text or json")
	flags.StringVar(&ro.tracing, "tracing", "", "tracing mode: none, simple, otel (requires -tags otel)")

	cmd.AddCommand(newSumCommand(a))
	cmd.AddCommand(newAlgorithmsCommand(a))
	cmd.AddCommand(newModeCommand(a))
	cmd.AddCommand(newSelfTestCommand(a))
	cmd.AddCommand(newVersionCommand())
	return cmd
}

func (a *app) setup(cmd *cobra.Command, ro *rootOptions, regOpts []hashlib.RegistryOption) error {
	cfg, err := config.Load(ro.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = ro.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = ro.logFormat
	}
	if flags.Changed("tracing") {
		cfg.Tracing = ro.tracing
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	tracer, err := cfg.Tracer()
	if err != nil {
		return err
	}

	opts := append([]hashlib.RegistryOption{
		hashlib.WithLogger(logger),
		hashlib.WithTracer(tracer),
	}, regOpts...)

	a.cfg = cfg
	a.logger = logger
	a.tracer = tracer
	a.registry = hashlib.New(opts...)
	return nil
}

// reportSpans logs what the in-memory tracer recorded.
func (a *app) reportSpans() {
	st, ok := a.tracer.(*telemetry.SimpleTracer)
	if !ok {
		return
	}
	for _, span := range st.Spans() {
		fields := telemetry.Fields{
			"span":     span.Name,
			"trace_id": span.TraceID,
			"duration": span.Duration.String(),
		}
		for k, v := range span.Attributes {
			fields[k] = v
		}
		if span.Error != nil {
			fields["error"] = span.Error.Error()
		}
		a.logger.Info("span", fields)
	}
}
