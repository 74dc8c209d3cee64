package comruntime

import (
	"errors"
	"fmt"
	"strings"
)

// Apartment is the threading model requested from CoInitializeEx.
// Its value is the COINIT flag passed to the native call.
type Apartment uint32

// ErrInvalidApartment is returned for values outside the Apartment enumeration.
var ErrInvalidApartment = errors.New("invalid apartment")

// Valid reports whether a is one of the known apartment kinds.
func (a Apartment) Valid() bool {
	return a == MultiThreaded || a == SingleThreaded
}

// String returns the short name used in configuration files.
func (a Apartment) String() string {
	switch a {
	case MultiThreaded:
		return "mta"
	case SingleThreaded:
		return "sta"
	default:
		return fmt.Sprintf("apartment(%d)", uint32(a))
	}
}

// ParseApartment converts configuration input into an Apartment.
func ParseApartment(s string) (Apartment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mta", "multi-threaded", "multithreaded":
		return MultiThreaded, nil
	case "sta", "single-threaded", "singlethreaded":
		return SingleThreaded, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidApartment, s)
	}
}
