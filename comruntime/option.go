package comruntime

import "go.uber.org/zap"

// options holds the collaborators shared by both guards.
type options struct {
	// native is the runtime API being sequenced.
	native Native
	// log receives the initialization and teardown traces.
	log *zap.SugaredLogger
}

// Option configures a guard.
type Option func(*options)

// WithNative replaces the ole32.dll binding, mainly for tests.
func WithNative(native Native) Option {
	return func(o *options) {
		if native != nil {
			o.native = native
		}
	}
}

// WithLogger sets the trace sink. Without it traces are discarded.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// newOptions applies opts over the defaults.
func newOptions(opts []Option) *options {
	o := &options{
		native: SystemNative(),
		log:    zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// noCopy may be embedded into structs which must not be copied after first use.
// go vet's copylocks check reports any copy.
type noCopy struct{}

// Lock is a no-op used by go vet.
func (*noCopy) Lock() {}

// Unlock is a no-op used by go vet.
func (*noCopy) Unlock() {}
