package errors

import "errors"

var (
	ErrNotFound = errors.New("admin not found")

	ErrInvalidID = errors.New("invalid admin ID format")

	ErrSessionNotFound = errors.New("session not found")

	ErrInvalidToken = errors.New("invalid session token")
)
