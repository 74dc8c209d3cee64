package probe

import (
	"context"
	"fmt"

	"github.com/oshokin/com-runtime/comruntime"
	"github.com/oshokin/com-runtime/hresult"
	"github.com/oshokin/com-runtime/internal/config"
	"github.com/oshokin/com-runtime/internal/logger"
)

// Options controls a runtime probe.
type Options struct {
	// ConfigPath specifies the settings YAML file; defaults are used when empty.
	ConfigPath string
	// Apartment overrides the configured apartment when set.
	Apartment string
	// LogLevel overrides the configured log level of this run when set.
	LogLevel string
	// OLE forces OLE initialization regardless of the configuration.
	OLE bool
	// Native replaces the ole32.dll binding; nil uses comruntime.SystemNative.
	Native comruntime.Native
}

// Run initializes the COM runtime on the calling thread, optionally OLE on top
// of it, and releases both. A failing status code is returned wrapped so that
// hresult.FromError can recover it.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "probe")

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	// The configured level applies to this run only; the global level is the CLI's business.
	level, _ := logger.ParseLogLevel(cfg.LogLevel)
	ctx = logger.ToContext(ctx, logger.Leveled(logger.FromContext(ctx), level))
	logger.Debug(ctx, "Configuration resolved")

	apartment := cfg.ApartmentKind()
	ctx = logger.WithKV(ctx, "apartment", apartment.String())

	if name, pid, ok := describeProcess(); ok {
		logger.InfoKV(ctx, "Probing COM runtime", "process", name, "pid", pid, "ole", cfg.OLE)
	} else {
		logger.InfoKV(ctx, "Probing COM runtime", "ole", cfg.OLE)
	}

	// Runtime traces get their own level so they can be shown without debug noise.
	traceLevel, _ := logger.ParseLogLevel(cfg.TraceLevel)
	runtimeOpts := []comruntime.Option{
		comruntime.WithLogger(logger.Leveled(logger.FromContext(ctx).Named("runtime"), traceLevel)),
	}

	if opts.Native != nil {
		runtimeOpts = append(runtimeOpts, comruntime.WithNative(opts.Native))
	}

	err = comruntime.RunWithCOM(apartment, func() error {
		logger.Info(ctx, "COM runtime ready")

		if !cfg.OLE {
			return nil
		}

		return comruntime.RunWithOLE(func() error {
			logger.Info(ctx, "OLE runtime ready")

			return nil
		}, runtimeOpts...)
	}, runtimeOpts...)
	if err != nil {
		if code, ok := hresult.FromError(err); ok {
			logger.ErrorKV(ctx, "Runtime initialization failed", "code", code.String())
		}

		return fmt.Errorf("probe runtime: %w", err)
	}

	logger.Info(ctx, "Runtime probe completed")

	return nil
}

// resolveConfig loads the settings file, or defaults, and applies the overrides.
func resolveConfig(opts *Options) (*config.Config, error) {
	cfg := config.Default()

	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}

		cfg = loaded
	}

	if opts.Apartment != "" {
		cfg.Apartment = opts.Apartment
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if opts.OLE {
		cfg.OLE = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}

	return cfg, nil
}
