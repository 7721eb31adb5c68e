package actionitems

import "errors"

var (
	// ErrActionItemNotFound is returned when no action item matches the
	// given id.
	ErrActionItemNotFound = errors.New("action item not found")

	// ErrValidation is returned for malformed requests.
	ErrValidation = errors.New("validation failed")
)
