package comruntime

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/com-runtime/hresult"
)

// fakeNative records calls and returns scripted codes.
type fakeNative struct {
	// comResult is returned from CoInitializeEx.
	comResult hresult.Code
	// oleResult is returned from OleInitialize.
	oleResult hresult.Code
	// coInit holds the flags passed to the last CoInitializeEx call.
	coInit uint32
	// comInits counts CoInitializeEx calls.
	comInits int
	// comUninits counts CoUninitialize calls.
	comUninits int
	// oleInits counts OleInitialize calls.
	oleInits int
	// oleUninits counts OleUninitialize calls.
	oleUninits int
	// threadID is reported as the current OS thread.
	threadID uint32
}

func (f *fakeNative) CoInitializeEx(coInit uint32) hresult.Code {
	f.comInits++
	f.coInit = coInit

	return f.comResult
}

func (f *fakeNative) CoUninitialize() {
	f.comUninits++
}

func (f *fakeNative) OleInitialize() hresult.Code {
	f.oleInits++

	return f.oleResult
}

func (f *fakeNative) OleUninitialize() {
	f.oleUninits++
}

func (f *fakeNative) CurrentThreadID() uint32 {
	return f.threadID
}

// newObservedLogger returns a debug-level sugared logger and the recorded entries.
func newObservedLogger(t *testing.T) (*zap.SugaredLogger, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)

	return zap.New(core).Sugar(), logs
}
