package events

import "errors"

var (
	// ErrDuplicateConsumer indicates a consumer name was registered twice
	// for the same category.
	ErrDuplicateConsumer = errors.New("duplicate consumer registration")

	// ErrInvalidRegistration indicates a registration with an empty name or
	// nil handler.
	ErrInvalidRegistration = errors.New("invalid consumer registration")
)
