package boards

import (
	"errors"
	"fmt"
)

var (
	// ErrBoardNotFound is returned when no board matches the given id or
	// invite code.
	ErrBoardNotFound = errors.New("board not found")

	// ErrForbidden is returned when the viewer is neither the owner nor
	// granted access to the board.
	ErrForbidden = errors.New("access to board denied")

	// ErrValidation is returned for malformed or rejected requests.
	ErrValidation = errors.New("validation failed")

	// ErrTimerAlreadyRunning rejects a start request while the stored
	// timer is already the start variant.
	ErrTimerAlreadyRunning = fmt.Errorf("%w: timer already running", ErrValidation)
)
