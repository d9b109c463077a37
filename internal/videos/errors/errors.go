package errors

import "errors"

var (
	ErrNotFound  = errors.New("video not found")
	ErrInvalidID = errors.New("invalid video ID format")
)
