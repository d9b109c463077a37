package errors

import "errors"

var (
	ErrNotFound  = errors.New("tour not found")
	ErrInvalidID = errors.New("invalid tour ID format")
)
