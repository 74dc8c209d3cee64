//go:build !windows

package comruntime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/com-runtime/hresult"
)

// TestSystemNative_Unsupported ensures both guards fail cleanly without ole32.dll.
func TestSystemNative_Unsupported(t *testing.T) {
	t.Parallel()

	com, err := NewCOMRuntime(SingleThreaded)
	require.Nil(t, com)

	code, ok := hresult.FromError(err)
	require.True(t, ok)
	require.Equal(t, hresult.ENotImpl, code)

	ole, err := NewOLERuntime()
	require.Nil(t, ole)

	code, ok = hresult.FromError(err)
	require.True(t, ok)
	require.Equal(t, hresult.ENotImpl, code)
}
