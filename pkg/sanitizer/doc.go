// Package sanitizer normalizes user and admin input before validation and storage.
//
// Every function is idempotent and never returns an error: invalid input
// becomes an empty value, which validation then reports.
package sanitizer
