package repository

import "errors"

// DuplicateKeyError reports a unique constraint violation. Error returns the
// database's description of the violated constraint.
type DuplicateKeyError struct {
	Detail string
	Err    error
}

func (e *DuplicateKeyError) Error() string {
	return e.Detail
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// IsDuplicateKey reports whether err is, or wraps, a DuplicateKeyError.
func IsDuplicateKey(err error) bool {
	var dup *DuplicateKeyError
	return errors.As(err, &dup)
}
