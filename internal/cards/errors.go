package cards

import "errors"

var (
	// ErrCardNotFound is returned when no card matches the given id.
	ErrCardNotFound = errors.New("card not found")

	// ErrValidation is returned for malformed requests.
	ErrValidation = errors.New("validation failed")
)
