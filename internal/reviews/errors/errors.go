package errors

import "errors"

var (
	ErrCacheMiss   = errors.New("reviews not cached")
	ErrInvalidURL  = errors.New("invalid review page URL")
	ErrUpstream    = errors.New("review page unavailable")
	ErrUnparseable = errors.New("review page could not be parsed")
)
