package comruntime

import "github.com/oshokin/com-runtime/hresult"

// Native is the per-thread runtime API the guards sequence.
type Native interface {
	// CoInitializeEx registers the calling thread with COM using the COINIT flags.
	CoInitializeEx(coInit uint32) hresult.Code
	// CoUninitialize balances a successful CoInitializeEx.
	CoUninitialize()
	// OleInitialize registers the calling thread with the OLE extension.
	OleInitialize() hresult.Code
	// OleUninitialize balances a successful OleInitialize.
	OleUninitialize()
	// CurrentThreadID identifies the OS thread the caller is running on.
	CurrentThreadID() uint32
}
