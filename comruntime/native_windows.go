//go:build windows

package comruntime

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/oshokin/com-runtime/hresult"
)

// x/sys/windows has no OleInitialize/OleUninitialize, so those two are bound here.
//
//nolint:gochecknoglobals // Lazy procedures are resolved once per process.
var (
	modole32 = windows.NewLazySystemDLL("ole32.dll")

	procOleInitialize   = modole32.NewProc("OleInitialize")
	procOleUninitialize = modole32.NewProc("OleUninitialize")
)

// ole32 calls into ole32.dll.
type ole32 struct{}

// SystemNative returns the ole32.dll binding.
//
//nolint:ireturn // Callers hold the binding through the Native interface.
func SystemNative() Native {
	return ole32{}
}

// CoInitializeEx calls windows.CoInitializeEx and recovers the HRESULT.
// A missing ole32.dll is reported as HRESULT_FROM_WIN32 of the loader error
// instead of letting the x/sys binding panic.
func (ole32) CoInitializeEx(coInit uint32) hresult.Code {
	if err := modole32.Load(); err != nil {
		return loaderCode(err)
	}

	return codeFromErrno(windows.CoInitializeEx(0, coInit))
}

// CoUninitialize calls windows.CoUninitialize.
func (ole32) CoUninitialize() {
	windows.CoUninitialize()
}

// OleInitialize calls OleInitialize(NULL).
func (ole32) OleInitialize() hresult.Code {
	if err := procOleInitialize.Find(); err != nil {
		return loaderCode(err)
	}

	ret, _, _ := procOleInitialize.Call(0)

	return hresult.Code(int32(uint32(ret))) //nolint:gosec // HRESULT occupies the low 32 bits.
}

// OleUninitialize calls OleUninitialize().
func (ole32) OleUninitialize() {
	_, _, _ = procOleUninitialize.Call()
}

// CurrentThreadID returns the Win32 thread id.
func (ole32) CurrentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}

// codeFromErrno undoes the x/sys convention of returning a non-zero HRESULT as syscall.Errno.
func codeFromErrno(err error) hresult.Code {
	if err == nil {
		return hresult.OK
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return hresult.Code(int32(uint32(errno))) //nolint:gosec // HRESULT occupies the low 32 bits.
	}

	return hresult.EFail
}

// loaderCode maps a DLL or procedure lookup failure to HRESULT_FROM_WIN32.
func loaderCode(err error) hresult.Code {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return hresult.FromWin32(uint32(errno)) //nolint:gosec // Win32 error codes are 32-bit.
	}

	return hresult.EFail
}
