// Package probe implements the comguard commands.
//
// Run brings the COM runtime (and optionally OLE) up on the current thread and
// tears it down again, reporting the captured status codes. RunCheck
// classifies a status code given on the command line.
package probe
