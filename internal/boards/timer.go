package boards

import (
	"fmt"

	"github.com/retroboardhq/retroboard/internal/models"
)

// ApplyTimerTransition decides whether the stored timer may move to the
// requested state. The only rejected transition is start while already
// running; everything else, including pause without a running timer and
// repeated pauses, is accepted as-is. Numeric fields are client clock
// values and pass through verbatim.
//
// Pure function: persistence and broadcast belong to the caller.
func ApplyTimerTransition(current *models.Timer, requested models.Timer) (*models.Timer, error) {
	switch requested.Type {
	case models.TimerTypeStart:
		if requested.Start == nil {
			return nil, fmt.Errorf("%w: start timer requires state", ErrValidation)
		}
		if current.Running() {
			return nil, ErrTimerAlreadyRunning
		}
	case models.TimerTypePaused:
		if requested.Paused == nil {
			return nil, fmt.Errorf("%w: paused timer requires state", ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown timer type %q", ErrValidation, requested.Type)
	}

	next := requested
	return &next, nil
}
