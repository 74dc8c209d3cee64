// Package logger wraps zap for the comguard binaries:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and a per-logger level override (Leveled).
//
// Services take a context and pull the logger from it. The same logger is
// handed to the COM runtime guards as their trace sink.
package logger
