// Package config defines the comguard settings file and helpers to load,
// validate and save it in YAML format.
//
// Config selects the COM apartment, whether OLE is initialized on top of it,
// and the levels used for regular logs and runtime traces.
package config
