package models

import "errors"

// Sentinel error kinds surfaced to the user. Operations wrap these with
// context via fmt.Errorf("%w: ..."); callers branch with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrMalformedImport = errors.New("malformed import")
)
