package store

import "errors"

// Sentinel error kinds surfaced by both backends. Callers match with
// errors.Is; everything not matching one of these is a generic storage
// failure.
var (
	// ErrNotFound means the operation referenced an id that is not persisted.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey means a uniqueness constraint (tax id, serial number)
	// was violated.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrValidation means a required field is missing or a field value is
	// out of range. The write was rejected before touching the medium.
	ErrValidation = errors.New("validation failed")
)
