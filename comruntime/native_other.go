//go:build !windows

package comruntime

import "github.com/oshokin/com-runtime/hresult"

// unsupported stands in for ole32.dll where it does not exist.
type unsupported struct{}

// SystemNative returns a binding whose initializers always report E_NOTIMPL.
//
//nolint:ireturn // Callers hold the binding through the Native interface.
func SystemNative() Native {
	return unsupported{}
}

func (unsupported) CoInitializeEx(uint32) hresult.Code { return hresult.ENotImpl }

func (unsupported) CoUninitialize() {}

func (unsupported) OleInitialize() hresult.Code { return hresult.ENotImpl }

func (unsupported) OleUninitialize() {}

// CurrentThreadID is constant: no registration can ever succeed here.
func (unsupported) CurrentThreadID() uint32 { return 0 }
