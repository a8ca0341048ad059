package models

import "errors"

var (
	// ErrAlreadyExists is returned by storage when a unique key is taken.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidParameters is returned when a parameter set is missing a
	// feature or carries a non-numeric value.
	ErrInvalidParameters = errors.New("invalid parameters")
)
