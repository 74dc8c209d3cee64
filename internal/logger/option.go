package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelOverride replaces the level of the core it wraps, in both directions.
type levelOverride struct {
	zapcore.Core

	// enabler decides which entries pass; an AtomicLevel keeps it adjustable.
	enabler zapcore.LevelEnabler
}

// Enabled consults only the override.
func (c *levelOverride) Enabled(l zapcore.Level) bool {
	return c.enabler.Enabled(l)
}

// Level reports the override so zap.Logger.Level reflects it.
func (c *levelOverride) Level() zapcore.Level {
	return zapcore.LevelOf(c.enabler)
}

// Check bypasses the wrapped core's own level check; Write is promoted from it.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *levelOverride) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}

	return ce.AddCore(ent, c)
}

// With keeps the override on derived cores.
//
//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (c *levelOverride) With(fields []zapcore.Field) zapcore.Core {
	return &levelOverride{Core: c.Core.With(fields), enabler: c.enabler}
}

// Leveled returns a copy of l filtered by enabler alone. The probe uses it to
// scope the configured level to one run and to give runtime traces their own level.
func Leveled(l *zap.SugaredLogger, enabler zapcore.LevelEnabler) *zap.SugaredLogger {
	return l.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &levelOverride{Core: core, enabler: enabler}
	}))
}
