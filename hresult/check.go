package hresult

// Check returns nil only when code is OK. Any other value, including False,
// yields a Failure carrying code.
func Check(code Code) error {
	ok := code == OK
	assertSucceeded(ok, code)

	if !ok {
		return NewFailure(code)
	}

	return nil
}

// CheckOKOrFalse returns nil when code is OK or False.
// Some completions (enumerators reporting "no more items", repeated
// initialization) use False as a qualified success.
func CheckOKOrFalse(code Code) error {
	ok := code == OK || code == False
	assertSucceeded(ok, code)

	if !ok {
		return NewFailure(code)
	}

	return nil
}
