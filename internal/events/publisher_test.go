package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectForBoard(t *testing.T) {
	boardID := uuid.MustParse("a2f1f5a9-6e3c-4c76-9f3a-1f2b3c4d5e6f")
	assert.Equal(t, "board.events.a2f1f5a9-6e3c-4c76-9f3a-1f2b3c4d5e6f", SubjectForBoard(boardID))
}

func TestMarshalEnvelope(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	boardID := uuid.New()

	data, err := marshalEnvelope(clock, boardID, EventTypeBoardUpdated, BoardDeletedPayload{BoardID: boardID.String()})
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(data, &envelope))

	assert.Equal(t, EventTypeBoardUpdated, envelope.EventType)
	assert.Equal(t, boardID.String(), envelope.BoardID)
	assert.Equal(t, now, envelope.Timestamp)
	assert.NotEmpty(t, envelope.EventID)
	_, err = uuid.Parse(envelope.EventID)
	assert.NoError(t, err)

	var payload BoardDeletedPayload
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, boardID.String(), payload.BoardID)
}

func TestMarshalEnvelopeUnmarshalablePayload(t *testing.T) {
	clock := clockwork.NewFakeClock()
	_, err := marshalEnvelope(clock, uuid.New(), EventTypeCardsUpdated, func() {})
	assert.Error(t, err)
}
