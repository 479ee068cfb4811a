package dto

import "errors"

var validationErrors = []error{
	ErrInvalidType,
	ErrInvalidAmount,
	ErrInvalidDate,
	ErrEmptyCategory,
	ErrEmptyName,
	ErrInvalidDueDay,
	ErrInvalidTarget,
	ErrInvalidCurrent,
	ErrInvalidDeadline,
}

// IsValidationError reports whether err is one of the request validation
// errors, letting handlers map it to a 400 instead of a 500.
func IsValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
