// Package comruntime scopes COM and OLE runtime registration to one OS thread.
//
// NewCOMRuntime and NewOLERuntime pin the calling goroutine to its thread,
// run the native initializer and check the returned code. Close releases the
// registration when the captured code calls for it and unpins the thread, so
// both calls must happen on the same goroutine. The guard remembers its OS
// thread and ignores a Close issued from any other. RunWithCOM and RunWithOLE
// wrap that pairing around a callback.
//
// Guards are handed out as pointers and must not be copied; go vet reports
// copies through the embedded noCopy marker.
package comruntime
