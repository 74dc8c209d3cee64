//go:build comdebug

package hresult

import "github.com/oshokin/com-runtime/internal/logger"

// assertSucceeded flags a failing check early in debug builds.
// The caller still returns the Failure afterwards.
func assertSucceeded(ok bool, code Code) {
	if !ok {
		logger.Logger().DPanicw("Status check assertion failed", "code", code.String())
	}
}
