package comruntime

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/com-runtime/hresult"
)

// TestCOMRuntime_SingleThreadedLifecycle walks through a successful STA initialization and teardown.
func TestCOMRuntime_SingleThreadedLifecycle(t *testing.T) {
	t.Parallel()

	native := &fakeNative{comResult: hresult.OK}
	log, logs := newObservedLogger(t)

	rt, err := NewCOMRuntime(SingleThreaded, WithNative(native), WithLogger(log))
	require.NoError(t, err)
	require.True(t, rt.Initialized())
	require.Equal(t, hresult.OK, rt.Result())
	require.Equal(t, uint32(0x2), native.coInit)
	require.Equal(t, 1, logs.FilterMessage("COM runtime initialized.").Len())

	rt.Close()

	require.False(t, rt.Initialized())
	require.Equal(t, 1, native.comUninits)
	require.Equal(t, 1, logs.FilterMessage("COM runtime uninitialized.").Len())

	// Closing again must not unbalance the runtime.
	rt.Close()
	require.Equal(t, 1, native.comUninits)
	require.Equal(t, 2, logs.Len())
}

// TestCOMRuntime_MultiThreadedFlags checks the COINIT value passed for MTA.
func TestCOMRuntime_MultiThreadedFlags(t *testing.T) {
	t.Parallel()

	native := &fakeNative{comResult: hresult.OK, coInit: 0xFF}

	rt, err := NewCOMRuntime(MultiThreaded, WithNative(native))
	require.NoError(t, err)

	defer rt.Close()

	require.Equal(t, uint32(0x0), native.coInit)
}

// TestCOMRuntime_InitializationFailure verifies that a failing code is propagated and never torn down.
func TestCOMRuntime_InitializationFailure(t *testing.T) {
	t.Parallel()

	for _, code := range []hresult.Code{hresult.EFail, hresult.RPCEChangedMode, hresult.False} {
		native := &fakeNative{comResult: code}
		log, logs := newObservedLogger(t)

		rt, err := NewCOMRuntime(SingleThreaded, WithNative(native), WithLogger(log))
		require.Nil(t, rt, code.String())

		got, ok := hresult.FromError(err)
		require.True(t, ok, code.String())
		require.Equal(t, code, got)

		// A nil guard is safe to close and never reaches the native API.
		rt.Close()

		require.Equal(t, 1, native.comInits)
		require.Zero(t, native.comUninits, code.String())
		require.Zero(t, logs.Len())
	}
}

// TestCOMRuntime_InvalidApartment rejects unknown apartments before any native call.
func TestCOMRuntime_InvalidApartment(t *testing.T) {
	t.Parallel()

	native := &fakeNative{comResult: hresult.OK}

	rt, err := NewCOMRuntime(Apartment(0x8), WithNative(native))
	require.Nil(t, rt)
	require.ErrorIs(t, err, ErrInvalidApartment)
	require.Zero(t, native.comInits)
}

// TestCOMRuntime_StaleResultSkipsTeardown covers the guard state left by a failed initialization.
func TestCOMRuntime_StaleResultSkipsTeardown(t *testing.T) {
	t.Parallel()

	native := &fakeNative{}
	rt := &COMRuntime{native: native, log: newOptions(nil).log, initResult: hresult.EFail, pinned: true}

	rt.Close()

	require.Zero(t, native.comUninits)
}

// TestCOMRuntime_CloseFromAnotherThread leaves the runtime registered until the owner closes it.
func TestCOMRuntime_CloseFromAnotherThread(t *testing.T) {
	t.Parallel()

	native := &fakeNative{comResult: hresult.OK, threadID: 10}
	log, logs := newObservedLogger(t)

	rt, err := NewCOMRuntime(SingleThreaded, WithNative(native), WithLogger(log))
	require.NoError(t, err)

	// Close issued from a goroutine on a different OS thread.
	native.threadID = 20
	done := make(chan struct{})

	go func() {
		defer close(done)

		rt.Close()
	}()
	<-done

	require.Zero(t, native.comUninits)
	require.True(t, rt.Initialized())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())

	// The owner still releases it exactly once.
	native.threadID = 10
	rt.Close()

	require.Equal(t, 1, native.comUninits)
	require.False(t, rt.Initialized())
}
