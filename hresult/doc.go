// Package hresult classifies status codes returned by COM-style calls.
//
// A Code is OK, False (the alternate success value) or a failure. Check and
// CheckOKOrFalse turn a failing Code into a Failure error that carries the
// original value; FromError recovers it from a wrapped error chain.
package hresult
