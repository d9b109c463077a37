package errors

import "errors"

var (
	ErrNotFound  = errors.New("meeting point not found")
	ErrInvalidID = errors.New("invalid meeting point ID format")
)
