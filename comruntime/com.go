package comruntime

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/oshokin/com-runtime/hresult"
)

// COMRuntime holds the COM registration of one OS thread.
type COMRuntime struct {
	_ noCopy

	// native is the runtime API used for teardown.
	native Native
	// log receives the teardown trace.
	log *zap.SugaredLogger
	// initResult is the code returned by CoInitializeEx; only OK is torn down.
	initResult hresult.Code
	// pinned is true while the goroutine is locked to its OS thread.
	pinned bool
	// threadID is the OS thread the runtime was initialized on.
	threadID uint32
}

// NewCOMRuntime initializes COM for the current thread with the given apartment.
// The goroutine stays locked to its OS thread until Close.
// A code other than S_OK is returned as an error wrapping hresult.Failure,
// and no guard is created.
func NewCOMRuntime(apartment Apartment, opts ...Option) (*COMRuntime, error) {
	if !apartment.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidApartment, apartment)
	}

	o := newOptions(opts)

	// Registration belongs to the OS thread, not the goroutine.
	runtime.LockOSThread()

	r := &COMRuntime{
		native:     o.native,
		log:        o.log,
		initResult: hresult.EFail,
		pinned:     true,
		threadID:   o.native.CurrentThreadID(),
	}

	r.initResult = r.native.CoInitializeEx(uint32(apartment))
	if err := hresult.Check(r.initResult); err != nil {
		r.unpin()

		return nil, fmt.Errorf("initialize COM runtime (%s): %w", apartment, err)
	}

	r.log.Debug("COM runtime initialized.")

	return r, nil
}

// Initialized reports whether Close would still call CoUninitialize.
func (r *COMRuntime) Initialized() bool {
	return r != nil && r.initResult == hresult.OK
}

// Result returns the code captured from CoInitializeEx,
// or hresult.EFail once the guard has been closed.
func (r *COMRuntime) Result() hresult.Code {
	return r.initResult
}

// Close uninitializes COM if initialization returned S_OK and unpins the thread.
// It must run on the goroutine that created the guard; a call from another
// OS thread is logged and ignored. Further calls do nothing.
func (r *COMRuntime) Close() {
	if r == nil || !r.pinned {
		return
	}

	// Another goroutine runs on another thread: tearing down there would
	// unbalance that thread and leave the owner pinned.
	if current := r.native.CurrentThreadID(); current != r.threadID {
		r.log.Warnw("COM runtime close ignored: called off the owning thread.",
			"owner_thread", r.threadID, "current_thread", current)

		return
	}

	if r.initResult == hresult.OK {
		r.native.CoUninitialize()
		r.log.Debug("COM runtime uninitialized.")
	}

	r.initResult = hresult.EFail
	r.unpin()
}

// unpin releases the thread lock taken by NewCOMRuntime once.
func (r *COMRuntime) unpin() {
	if r.pinned {
		r.pinned = false

		runtime.UnlockOSThread()
	}
}
