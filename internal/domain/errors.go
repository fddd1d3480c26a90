package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert hits a uniqueness constraint,
	// e.g. two concurrent first calls racing to create the same client.
	ErrDuplicate = errors.New("record already exists")
)
