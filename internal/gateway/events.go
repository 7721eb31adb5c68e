package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/retroboardhq/retroboard/internal/events"
)

// BoardEvent is the frame pushed to websocket clients:
// {"type":"BOARD_UPDATED","payload":{...}}.
type BoardEvent struct {
	Type    events.EventType `json:"type"`
	Payload json.RawMessage  `json:"payload"`
}

// boardEventFromEnvelope converts a published envelope into the client
// frame, rejecting event types the gateway does not know how to fan out.
func boardEventFromEnvelope(envelope events.Envelope) (*BoardEvent, error) {
	switch envelope.EventType {
	case events.EventTypeBoardUpdated,
		events.EventTypeBoardDeleted,
		events.EventTypeColumnsUpdated,
		events.EventTypeCardsUpdated,
		events.EventTypeActionItemsUpdated:
	default:
		return nil, fmt.Errorf("unknown event type: %s", envelope.EventType)
	}

	return &BoardEvent{
		Type:    envelope.EventType,
		Payload: envelope.Payload,
	}, nil
}
