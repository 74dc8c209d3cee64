package hresult

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Code is a 32-bit signed status code returned by native COM calls.
type Code int32

// Success codes.
const (
	// OK is the canonical success value (S_OK).
	OK Code = 0
	// False is the alternate success value (S_FALSE), e.g. "already initialized".
	False Code = 1
)

// Well-known failure codes.
const (
	// ENotImpl is returned when a call is not implemented (E_NOTIMPL).
	ENotImpl = Code(-0x7FFFBFFF) // 0x80004001
	// EFail is the unspecified failure (E_FAIL).
	EFail = Code(-0x7FFFBFFB) // 0x80004005
	// EUnexpected signals a catastrophic failure (E_UNEXPECTED).
	EUnexpected = Code(-0x7FFF0001) // 0x8000FFFF
	// EOutOfMemory signals an allocation failure (E_OUTOFMEMORY).
	EOutOfMemory = Code(-0x7FF8FFF2) // 0x8007000E
	// EInvalidArg signals an invalid argument (E_INVALIDARG).
	EInvalidArg = Code(-0x7FF8FFA9) // 0x80070057
	// RPCEChangedMode is returned when the thread already has a different apartment (RPC_E_CHANGED_MODE).
	RPCEChangedMode = Code(-0x7FFEFEFA) // 0x80010106
)

const (
	// facilityWin32 is FACILITY_WIN32.
	facilityWin32 = 7
	// severityError is the SEVERITY_ERROR bit.
	severityError = 0x80000000
)

// names maps known codes to their symbolic names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var names = map[Code]string{
	OK:              "S_OK",
	False:           "S_FALSE",
	ENotImpl:        "E_NOTIMPL",
	EFail:           "E_FAIL",
	EUnexpected:     "E_UNEXPECTED",
	EOutOfMemory:    "E_OUTOFMEMORY",
	EInvalidArg:     "E_INVALIDARG",
	RPCEChangedMode: "RPC_E_CHANGED_MODE",
}

// errInvalidCode is returned when a string cannot be parsed as a status code.
var errInvalidCode = errors.New("invalid status code")

// Succeeded reports whether the severity bit is clear (the SUCCEEDED macro).
func (c Code) Succeeded() bool {
	return c >= 0
}

// Failed reports whether the severity bit is set (the FAILED macro).
func (c Code) Failed() bool {
	return c < 0
}

// Name returns the symbolic name of a well-known code, or an empty string.
func (c Code) Name() string {
	return names[c]
}

// String renders the code as 0xXXXXXXXX, followed by its name when known.
func (c Code) String() string {
	hex := fmt.Sprintf("0x%08X", uint32(c)) //nolint:gosec // Bit pattern rendering.
	if name := c.Name(); name != "" {
		return hex + " (" + name + ")"
	}

	return hex
}

// FromWin32 converts a Win32 error code into an HRESULT (HRESULT_FROM_WIN32).
func FromWin32(errno uint32) Code {
	if int32(errno) <= 0 { //nolint:gosec // Already an HRESULT or success.
		return Code(int32(errno)) //nolint:gosec // Same bit pattern.
	}

	return Code(int32(errno&0xFFFF | facilityWin32<<16 | severityError)) //nolint:gosec // Severity bit set on purpose.
}

// Parse reads a status code written in decimal or 0x-prefixed hex.
// Unsigned 32-bit renderings of negative codes (0x80004005) are accepted.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", errInvalidCode)
	}

	value, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", errInvalidCode, s, err)
	}

	switch {
	case value >= -1<<31 && value < 1<<31:
		return Code(value), nil
	case value >= 1<<31 && value < 1<<32:
		return Code(int32(uint32(value))), nil //nolint:gosec // Range checked above.
	default:
		return 0, fmt.Errorf("%w: %q is out of 32-bit range", errInvalidCode, s)
	}
}
