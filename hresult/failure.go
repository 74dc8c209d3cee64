package hresult

import "errors"

// Failure is the error produced when a status check does not pass.
// It carries the original code and is never mutated after creation.
type Failure struct {
	// code is the failing status code.
	code Code
}

// NewFailure wraps code into a Failure.
func NewFailure(code Code) Failure {
	return Failure{code: code}
}

// Code returns the failing status code.
func (f Failure) Code() Code {
	return f.code
}

// Error implements the error interface.
func (f Failure) Error() string {
	return "status check failed: " + f.code.String()
}

// FromError extracts the status code from a Failure anywhere in err's chain.
func FromError(err error) (Code, bool) {
	var failure Failure
	if errors.As(err, &failure) {
		return failure.Code(), true
	}

	return 0, false
}
