package services

import "errors"

var (
	// ErrNotFound marks a target entity that does not exist or is banned
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks an operation on an entity the caller does not own
	ErrForbidden = errors.New("forbidden")
)
