package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Publisher is the outbound port the apps use to announce board changes.
// Publishing is best effort: implementations log and drop on failure so a
// committed mutation is never rolled back because fan-out failed.
type Publisher interface {
	Publish(ctx context.Context, boardID uuid.UUID, eventType EventType, payload interface{})
}

// Envelope is the wire format published to NATS and consumed by the gateway.
type Envelope struct {
	EventID   string          `json:"eventId"`
	EventType EventType       `json:"eventType"`
	BoardID   string          `json:"boardId"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// SubjectForBoard returns the per-board NATS subject. Using one subject per
// board keeps per-board ordering while the gateway subscribes to the
// wildcard "board.events.>".
func SubjectForBoard(boardID uuid.UUID) string {
	return fmt.Sprintf("board.events.%s", boardID)
}

// NATSPublisherConfig holds connection settings for the NATS publisher.
type NATSPublisherConfig struct {
	URL           string
	MaxReconnects int
	ReconnectWait time.Duration
}

// DefaultNATSPublisherConfig returns default publisher configuration.
func DefaultNATSPublisherConfig() NATSPublisherConfig {
	return NATSPublisherConfig{
		URL:           nats.DefaultURL,
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
	}
}

// NATSPublisher publishes board events over core NATS. Delivery is
// at-most-once on purpose: clients that were offline fetch current state
// over HTTP when they reconnect, missed events are not replayed.
type NATSPublisher struct {
	nc    *nats.Conn
	clock clockwork.Clock
}

// NewNATSPublisher connects to NATS and returns a publisher.
func NewNATSPublisher(config NATSPublisherConfig, clock clockwork.Clock) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.MaxReconnects(config.MaxReconnects),
		nats.ReconnectWait(config.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return &NATSPublisher{nc: nc, clock: clock}, nil
}

// Publish builds the envelope and fires it at the per-board subject.
// Errors are logged and swallowed.
func (p *NATSPublisher) Publish(ctx context.Context, boardID uuid.UUID, eventType EventType, payload interface{}) {
	data, err := marshalEnvelope(p.clock, boardID, eventType, payload)
	if err != nil {
		log.Error().
			Err(err).
			Str("board_id", boardID.String()).
			Str("event_type", string(eventType)).
			Msg("failed to marshal board event, dropping")
		return
	}

	if err := p.nc.Publish(SubjectForBoard(boardID), data); err != nil {
		log.Warn().
			Err(err).
			Str("board_id", boardID.String()).
			Str("event_type", string(eventType)).
			Msg("failed to publish board event, dropping")
		return
	}

	log.Debug().
		Str("board_id", boardID.String()).
		Str("event_type", string(eventType)).
		Msg("board event published")
}

// Close drains and closes the NATS connection.
func (p *NATSPublisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}

func marshalEnvelope(clock clockwork.Clock, boardID uuid.UUID, eventType EventType, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	envelope := Envelope{
		EventID:   uuid.New().String(),
		EventType: eventType,
		BoardID:   boardID.String(),
		Timestamp: clock.Now().UTC(),
		Payload:   raw,
	}
	return json.Marshal(envelope)
}
