package comruntime

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/oshokin/com-runtime/hresult"
)

// OLERuntime holds the OLE registration of one OS thread.
type OLERuntime struct {
	_ noCopy

	// native is the runtime API used for teardown.
	native Native
	// log receives the teardown trace.
	log *zap.SugaredLogger
	// initResult is the code returned by OleInitialize; S_OK and S_FALSE are torn down.
	initResult hresult.Code
	// pinned is true while the goroutine is locked to its OS thread.
	pinned bool
	// threadID is the OS thread the runtime was initialized on.
	threadID uint32
}

// NewOLERuntime initializes OLE for the current thread, reusing whatever COM
// apartment the thread already has. S_FALSE is accepted.
func NewOLERuntime(opts ...Option) (*OLERuntime, error) {
	o := newOptions(opts)

	runtime.LockOSThread()

	r := &OLERuntime{
		native:     o.native,
		log:        o.log,
		initResult: hresult.EFail,
		pinned:     true,
		threadID:   o.native.CurrentThreadID(),
	}

	r.initResult = r.native.OleInitialize()
	if err := hresult.CheckOKOrFalse(r.initResult); err != nil {
		r.unpin()

		return nil, fmt.Errorf("initialize OLE runtime: %w", err)
	}

	r.log.Debug("OLE COM runtime initialized.")

	return r, nil
}

// Initialized reports whether Close would still call OleUninitialize.
func (r *OLERuntime) Initialized() bool {
	return r != nil && balancesOLE(r.initResult)
}

// Result returns the code captured from OleInitialize,
// or hresult.EFail once the guard has been closed.
func (r *OLERuntime) Result() hresult.Code {
	return r.initResult
}

// Close uninitializes OLE and unpins the thread.
// Every successful OleInitialize, S_FALSE included, needs exactly one
// OleUninitialize. A call from another OS thread is logged and ignored.
// Further calls do nothing.
func (r *OLERuntime) Close() {
	if r == nil || !r.pinned {
		return
	}

	// Another goroutine runs on another thread: tearing down there would
	// unbalance that thread and leave the owner pinned.
	if current := r.native.CurrentThreadID(); current != r.threadID {
		r.log.Warnw("OLE runtime close ignored: called off the owning thread.",
			"owner_thread", r.threadID, "current_thread", current)

		return
	}

	if balancesOLE(r.initResult) {
		r.native.OleUninitialize()
		r.log.Debug("OLE COM runtime uninitialized.")
	}

	r.initResult = hresult.EFail
	r.unpin()
}

// unpin releases the thread lock taken by NewOLERuntime once.
func (r *OLERuntime) unpin() {
	if r.pinned {
		r.pinned = false

		runtime.UnlockOSThread()
	}
}

// balancesOLE reports whether an OleInitialize result requires OleUninitialize.
func balancesOLE(code hresult.Code) bool {
	return code == hresult.OK || code == hresult.False
}
