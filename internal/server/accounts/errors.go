package accounts

import "errors"

// ValidationError marks a user-correctable input failure. The message is the
// full client-facing response: one human-readable sentence per rule, not a
// field-level error map. Handlers map it to a 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Messages are part of the public contract with existing clients and are
// reproduced verbatim.
var (
	ErrFieldsRequired     = &ValidationError{msg: "All fields are required"}
	ErrPasswordTooShort   = &ValidationError{msg: "Password must be at least 6 characters"}
	ErrInvalidEmailFormat = &ValidationError{msg: "Invalid email format"}
)

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
