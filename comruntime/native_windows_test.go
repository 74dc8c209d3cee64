//go:build windows

package comruntime

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"

	"github.com/oshokin/com-runtime/hresult"
)

// TestSystemNative_Balanced initializes COM and OLE on a fresh thread through
// ole32.dll and checks that Close leaves the thread uninitialized again.
func TestSystemNative_Balanced(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})

	// A dedicated goroutine gets a thread nobody else has registered.
	go func() {
		defer close(done)

		com, err := NewCOMRuntime(SingleThreaded)
		if !assertNoError(t, err) {
			return
		}

		ole, err := NewOLERuntime()
		if !assertNoError(t, err) {
			com.Close()

			return
		}

		if com.Result() != hresult.OK {
			t.Errorf("CoInitializeEx returned %s", com.Result())
		}

		if r := ole.Result(); r != hresult.OK && r != hresult.False {
			t.Errorf("OleInitialize returned %s", r)
		}

		ole.Close()
		com.Close()

		// Balanced teardown: the thread accepts a fresh S_OK initialization.
		again, err := NewCOMRuntime(MultiThreaded)
		if !assertNoError(t, err) {
			return
		}

		if again.Result() != hresult.OK {
			t.Errorf("re-initialization returned %s", again.Result())
		}

		again.Close()
	}()
	<-done
}

// assertNoError reports err without stopping a non-test goroutine.
func assertNoError(t *testing.T, err error) bool {
	t.Helper()

	if err != nil {
		t.Errorf("unexpected error: %v", err)

		return false
	}

	return true
}

// TestCodeFromErrno recovers HRESULTs from the x/sys error convention.
func TestCodeFromErrno(t *testing.T) {
	t.Parallel()

	require.Equal(t, hresult.OK, codeFromErrno(nil))
	require.Equal(t, hresult.False, codeFromErrno(syscall.Errno(1)))
	require.Equal(t, hresult.RPCEChangedMode, codeFromErrno(syscall.Errno(0x80010106)))
	require.Equal(t, hresult.EFail, codeFromErrno(errors.New("opaque")))
}

// TestLoaderCode distinguishes a missing DLL from E_NOTIMPL.
func TestLoaderCode(t *testing.T) {
	t.Parallel()

	err := windows.NewLazySystemDLL("comguard-missing.dll").Load()
	require.Error(t, err)

	// HRESULT_FROM_WIN32 keeps the loader error under FACILITY_WIN32.
	code := loaderCode(err)
	require.Equal(t, uint32(0x80070000), uint32(code)&0xFFFF0000, code.String())
	require.NotEqual(t, hresult.ENotImpl, code)
}

// TestApartmentFlags pins the apartments to the x/sys COINIT values.
func TestApartmentFlags(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint32(windows.COINIT_APARTMENTTHREADED), uint32(SingleThreaded))
	require.Equal(t, uint32(windows.COINIT_MULTITHREADED), uint32(MultiThreaded))
}
