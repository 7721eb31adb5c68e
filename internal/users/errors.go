package users

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given id,
	// email or nickname.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when a create collides on email or nickname.
	ErrUserExists = errors.New("user already exists")

	// ErrValidation is returned for malformed create requests.
	ErrValidation = errors.New("validation failed")
)
