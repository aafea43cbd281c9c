package docstore

import (
	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrUnavailable marks failures where the store could not be reached at all.
	ErrUnavailable = crerr.New("document store unavailable")
	// ErrOperationFailed marks reads or writes rejected by a reachable store.
	ErrOperationFailed = crerr.New("document store operation failed")
	// ErrNotFound is returned by update and delete for a missing key.
	ErrNotFound = crerr.New("document not found")
)

// kindError keeps the original cause in the message while letting
// errors.Is match the kind sentinel.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string   { return e.cause.Error() }
func (e *kindError) Unwrap() []error { return []error{e.kind, e.cause} }

func withKind(kind, cause error, format string, args ...any) error {
	if cause == nil {
		return crerr.Wrapf(kind, format, args...)
	}
	return crerr.Wrapf(&kindError{kind: kind, cause: cause}, format, args...)
}

func Unavailable(err error, format string, args ...any) error {
	return withKind(ErrUnavailable, err, format, args...)
}

func OperationFailed(err error, format string, args ...any) error {
	return withKind(ErrOperationFailed, err, format, args...)
}

func NotFound(format string, args ...any) error {
	return crerr.Wrapf(ErrNotFound, format, args...)
}

func IsUnavailable(err error) bool {
	return crerr.Is(err, ErrUnavailable)
}
