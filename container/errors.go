package container

import "errors"

var (
	// ErrEmptyContainer is returned when an element is requested from an empty container.
	ErrEmptyContainer = errors.New("container is empty")

	// ErrInvalidArgument is returned for negative or unreachable counts and for missing callbacks.
	ErrInvalidArgument = errors.New("invalid argument")
)
