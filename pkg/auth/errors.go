package auth

import (
	"errors"
)

// Rejection errors for inbound webhook deliveries. The error text is the
// client-visible rejection message, so it is fixed per kind.
var (
	ErrSignatureMissing       = errors.New("signature missing")
	ErrSignaturePrefixMissing = errors.New("signature prefix missing")
	ErrSignatureMalformed     = errors.New("signature malformed")
	ErrBodyRead               = errors.New("error reading body")
	ErrSignatureMismatch      = errors.New("signature mismatch")
)

// DecodeError reports a verified body that could not be decoded into the
// caller's payload type. Unlike the sentinel errors above its message varies:
// it carries the underlying JSON error, which names the field path at fault.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
