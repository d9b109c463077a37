package errors

import "errors"

var (
	ErrNotFound        = errors.New("private tour not found")
	ErrOptionNotFound  = errors.New("tour option not found")
	ErrBookingNotFound = errors.New("private tour booking not found")
	ErrInvalidID       = errors.New("invalid ID format")
)
