package errors

import "errors"

var (
	ErrNotFound  = errors.New("site settings not found")
	ErrInvalidID = errors.New("invalid site settings ID format")
)
