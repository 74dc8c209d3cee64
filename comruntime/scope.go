package comruntime

// RunWithCOM initializes COM for the current thread, runs fn and
// uninitializes on every exit path, including a panic inside fn.
func RunWithCOM(apartment Apartment, fn func() error, opts ...Option) error {
	rt, err := NewCOMRuntime(apartment, opts...)
	if err != nil {
		return err
	}

	defer rt.Close()

	return fn()
}

// RunWithOLE initializes OLE for the current thread, runs fn and
// uninitializes on every exit path, including a panic inside fn.
func RunWithOLE(fn func() error, opts ...Option) error {
	rt, err := NewOLERuntime(opts...)
	if err != nil {
		return err
	}

	defer rt.Close()

	return fn()
}
