package repositories

import "errors"

// ErrNotFound is returned when no document matches the requested identifier.
var ErrNotFound = errors.New("document not found")
