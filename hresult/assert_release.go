//go:build !comdebug

package hresult

func assertSucceeded(bool, Code) {}
