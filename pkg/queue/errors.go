package queue

import "errors"

// unrecoverableError marks a job failure that must not be retried, no matter
// how many attempts remain.
type unrecoverableError struct {
	err error
}

func (e *unrecoverableError) Error() string {
	return e.err.Error()
}

func (e *unrecoverableError) Unwrap() error {
	return e.err
}

// Unrecoverable wraps err so the worker moves the job straight to the
// unrecoverable terminal state instead of scheduling a retry.
// Unrecoverable(nil) returns nil.
func Unrecoverable(err error) error {
	if err == nil {
		return nil
	}
	return &unrecoverableError{err: err}
}

// IsUnrecoverable reports whether err (or anything it wraps) was marked
// with Unrecoverable.
func IsUnrecoverable(err error) bool {
	var ue *unrecoverableError
	return errors.As(err, &ue)
}
