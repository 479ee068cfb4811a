package service

import "errors"

// ErrNotFound is returned when a record does not exist or belongs to a
// different user. The two cases are deliberately indistinguishable to
// callers.
var ErrNotFound = errors.New("record not found")
