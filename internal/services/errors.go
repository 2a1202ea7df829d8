package services

import "errors"

// ErrInvalidID is returned when a caller-supplied identifier is not a
// well-formed store identifier. The store is never contacted in that case.
var ErrInvalidID = errors.New("invalid id")
