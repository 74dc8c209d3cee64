package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/com-runtime/comruntime"
	"github.com/oshokin/com-runtime/internal/logger"
)

// Config holds the runtime probe settings.
type Config struct {
	// Apartment is the COM threading model: "sta" or "mta".
	Apartment string `yaml:"apartment"`
	// OLE enables OLE initialization on top of the COM runtime.
	OLE bool `yaml:"ole"`
	// LogLevel is the minimum level for regular log messages.
	LogLevel string `yaml:"log_level"`
	// TraceLevel is the minimum level at which runtime init/teardown traces are shown.
	TraceLevel string `yaml:"trace_level"`
}

const (
	// DefaultConfigFilename is the default filename for probe settings.
	DefaultConfigFilename = "comguard.yaml"

	// DefaultApartment is the apartment used when none is configured.
	DefaultApartment = "sta"

	// DefaultLogLevel is the level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultTraceLevel shows runtime traces, which are emitted at debug level.
	DefaultTraceLevel = "debug"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLogLevel is returned for an unknown log or trace level.
	errInvalidLogLevel = errors.New("invalid log level")
	// errOLERequiresSTA is returned when OLE is requested on a multi-threaded apartment.
	errOLERequiresSTA = errors.New("OLE requires a single-threaded apartment")
)

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Apartment:  DefaultApartment,
		LogLevel:   DefaultLogLevel,
		TraceLevel: DefaultTraceLevel,
	}
}

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes Config to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults and checks apartment, levels and the OLE/apartment pairing.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Apartment == "" {
		cfg.Apartment = DefaultApartment
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if cfg.TraceLevel == "" {
		cfg.TraceLevel = DefaultTraceLevel
	}

	apartment, err := comruntime.ParseApartment(cfg.Apartment)
	if err != nil {
		return fmt.Errorf("invalid apartment: %w", err)
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: log_level %q", errInvalidLogLevel, cfg.LogLevel)
	}

	if _, ok := logger.ParseLogLevel(cfg.TraceLevel); !ok {
		return fmt.Errorf("%w: trace_level %q", errInvalidLogLevel, cfg.TraceLevel)
	}

	// OleInitialize always asks for an STA and fails with RPC_E_CHANGED_MODE on an MTA thread.
	if cfg.OLE && apartment != comruntime.SingleThreaded {
		return errOLERequiresSTA
	}

	return nil
}

// ApartmentKind returns the parsed apartment. Call Validate first.
func (c *Config) ApartmentKind() comruntime.Apartment {
	apartment, err := comruntime.ParseApartment(c.Apartment)
	if err != nil {
		return comruntime.SingleThreaded
	}

	return apartment
}
