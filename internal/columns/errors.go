package columns

import "errors"

var (
	// ErrColumnNotFound is returned when no column matches the given id.
	ErrColumnNotFound = errors.New("column not found")

	// ErrValidation is returned for malformed requests.
	ErrValidation = errors.New("validation failed")
)
