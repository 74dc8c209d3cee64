// Package version exposes comguard build metadata.
//
// Version, Commit and BuildTime are injected through -ldflags and default to
// local-build values. Short and Full render them for CLI output and logs.
package version
