//go:build windows

package comruntime

import "golang.org/x/sys/windows"

const (
	// MultiThreaded maps to COINIT_MULTITHREADED.
	MultiThreaded Apartment = windows.COINIT_MULTITHREADED
	// SingleThreaded maps to COINIT_APARTMENTTHREADED.
	SingleThreaded Apartment = windows.COINIT_APARTMENTTHREADED
)
