package models

import (
	"encoding/json"
	"fmt"
)

// TimerType tags the two variants of a board timer.
type TimerType string

const (
	TimerTypeStart  TimerType = "start"
	TimerTypePaused TimerType = "paused"
)

// StartState carries the running-timer window. Both instants are client
// clock values persisted verbatim; no ordering between them is enforced.
type StartState struct {
	StartTime int64 `json:"startTime"`
	EndTime   int64 `json:"endTime"`
}

// PausedState carries the time accumulated before the pause.
type PausedState struct {
	TotalDuration int64 `json:"totalDuration"`
}

// Timer is the tagged union stored as a single JSONB column on the board
// row. Exactly one of Start/Paused is set, matching Type. The wire shape
// is {"type":"start","state":{...}} or {"type":"paused","state":{...}}.
type Timer struct {
	Type   TimerType
	Start  *StartState
	Paused *PausedState
}

// Running reports whether t is the start variant. Nil-safe.
func (t *Timer) Running() bool {
	return t != nil && t.Type == TimerTypeStart
}

type timerWire struct {
	Type  TimerType       `json:"type"`
	State json.RawMessage `json:"state"`
}

func (t Timer) MarshalJSON() ([]byte, error) {
	var state interface{}
	switch t.Type {
	case TimerTypeStart:
		state = t.Start
	case TimerTypePaused:
		state = t.Paused
	default:
		return nil, fmt.Errorf("unknown timer type %q", t.Type)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	return json.Marshal(timerWire{Type: t.Type, State: raw})
}

func (t *Timer) UnmarshalJSON(data []byte) error {
	var wire timerWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	switch wire.Type {
	case TimerTypeStart:
		var state StartState
		if err := json.Unmarshal(wire.State, &state); err != nil {
			return fmt.Errorf("decode start state: %w", err)
		}
		*t = Timer{Type: TimerTypeStart, Start: &state}
	case TimerTypePaused:
		var state PausedState
		if err := json.Unmarshal(wire.State, &state); err != nil {
			return fmt.Errorf("decode paused state: %w", err)
		}
		*t = Timer{Type: TimerTypePaused, Paused: &state}
	default:
		return fmt.Errorf("unknown timer type %q", wire.Type)
	}
	return nil
}
