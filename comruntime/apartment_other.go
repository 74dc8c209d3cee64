//go:build !windows

package comruntime

// COINIT values from objbase.h; golang.org/x/sys/windows only builds on Windows.
const (
	// MultiThreaded maps to COINIT_MULTITHREADED.
	MultiThreaded Apartment = 0x0
	// SingleThreaded maps to COINIT_APARTMENTTHREADED.
	SingleThreaded Apartment = 0x2
)
