// Package repository holds the in-memory session stores. There is no
// persistence in this system: collections are generated fresh at startup and
// live for the process lifetime.
package repository

import "errors"

var (
	// ErrNotFound is returned for every lookup miss so callers can compare
	// with errors.Is regardless of which store missed.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an insert would break id or license-number
	// uniqueness.
	ErrConflict = errors.New("record already exists")
)
