package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/retroboardhq/retroboard/internal/events"
	"github.com/rs/zerolog/log"
)

// ConsumerConfig holds configuration for the NATS consumer
type ConsumerConfig struct {
	URL           string
	SubjectFilter string // e.g. "board.events.>"
	MaxReconnects int
	ReconnectWait time.Duration
}

// DefaultConsumerConfig returns default NATS consumer configuration
func DefaultConsumerConfig() ConsumerConfig {
	return ConsumerConfig{
		URL:           nats.DefaultURL,
		SubjectFilter: "board.events.>",
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
	}
}

// EventConsumer subscribes to board events on core NATS and fans them
// out to websocket clients. Core pub/sub is deliberate: events missed
// while the gateway (or a client) is away are gone, clients re-fetch
// board state over HTTP on reconnect.
type EventConsumer struct {
	connectionManager *ConnectionManager
	nc                *nats.Conn
	sub               *nats.Subscription
	config            ConsumerConfig
}

// NewEventConsumer connects to NATS and returns a consumer
func NewEventConsumer(cm *ConnectionManager, config ConsumerConfig) (*EventConsumer, error) {
	opts := []nats.Option{
		nats.MaxReconnects(config.MaxReconnects),
		nats.ReconnectWait(config.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return &EventConsumer{
		connectionManager: cm,
		nc:                nc,
		config:            config,
	}, nil
}

// Start subscribes and blocks until the context ends
func (ec *EventConsumer) Start(ctx context.Context) error {
	log.Info().
		Str("subject", ec.config.SubjectFilter).
		Msg("starting board event consumer")

	sub, err := ec.nc.Subscribe(ec.config.SubjectFilter, func(msg *nats.Msg) {
		if err := ec.processMessage(msg); err != nil {
			log.Error().
				Err(err).
				Str("subject", msg.Subject).
				Msg("failed to process message")
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	ec.sub = sub

	<-ctx.Done()
	log.Info().Msg("event consumer shutting down")
	return nil
}

func (ec *EventConsumer) processMessage(msg *nats.Msg) error {
	var envelope events.Envelope
	if err := json.Unmarshal(msg.Data, &envelope); err != nil {
		return fmt.Errorf("unmarshal event envelope: %w", err)
	}

	boardID, err := uuid.Parse(envelope.BoardID)
	if err != nil {
		return fmt.Errorf("parse board id: %w", err)
	}

	event, err := boardEventFromEnvelope(envelope)
	if err != nil {
		return err
	}

	ec.connectionManager.BroadcastToBoard(boardID, event)

	log.Debug().
		Str("event_id", envelope.EventID).
		Str("board_id", envelope.BoardID).
		Str("event_type", string(envelope.EventType)).
		Msg("event handed to connection manager")

	return nil
}

// Stop unsubscribes and closes the NATS connection
func (ec *EventConsumer) Stop() error {
	if ec.sub != nil {
		if err := ec.sub.Unsubscribe(); err != nil {
			log.Error().Err(err).Msg("failed to unsubscribe")
		}
	}
	if ec.nc != nil {
		ec.nc.Close()
	}
	return nil
}
