// Package store wraps GORM access to users and certification records.
package store

import "errors"

var (
	// ErrNotFound is returned when a lookup misses.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert hits the unique email
	// index. The insert failure, not a pre-check, is the duplicate signal.
	ErrDuplicateEmail = errors.New("email already registered")
)
