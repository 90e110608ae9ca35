package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/roomdesk/booking-assistant/internal/model"
	"github.com/roomdesk/booking-assistant/pkg/logger"
)

const (
	// StreamName is the name of the booking events stream.
	StreamName = "BOOKINGS"

	// SubjectPrefix is the prefix for all booking event subjects.
	SubjectPrefix = "bookings"
)

// Config holds NATS connection configuration.
type Config struct {
	URL   string
	Token string
}

// StreamPublisher publishes booking events to a JetStream stream.
type StreamPublisher struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	logger *logger.Logger
}

// Connect establishes a connection to NATS and ensures the booking stream
// exists.
func Connect(ctx context.Context, cfg Config, log *logger.Logger) (*StreamPublisher, error) {
	opts := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected")
		}),
	}
	if cfg.Token != "" {
		opts = append(opts, nats.Token(cfg.Token))
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	p := &StreamPublisher{conn: conn, js: js, logger: log}
	if err := p.ensureStream(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return p, nil
}

// ensureStream ensures the booking events stream exists.
func (p *StreamPublisher) ensureStream(ctx context.Context) error {
	if _, err := p.js.Stream(ctx, StreamName); err == nil {
		return nil
	}

	_, err := p.js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      90 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Description: "Booking lifecycle events",
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	return nil
}

// EventSubject returns the subject for an event type.
func EventSubject(eventType model.EventType) string {
	return fmt.Sprintf("%s.%s", SubjectPrefix, eventType)
}

// BookingCreated publishes a booking-created event.
func (p *StreamPublisher) BookingCreated(ctx context.Context, rec model.BookingRecord) {
	p.publish(ctx, model.EventTypeCreated, rec)
}

// BookingCancelled publishes a booking-cancelled event.
func (p *StreamPublisher) BookingCancelled(ctx context.Context, rec model.BookingRecord) {
	p.publish(ctx, model.EventTypeCancelled, rec)
}

func (p *StreamPublisher) publish(ctx context.Context, eventType model.EventType, rec model.BookingRecord) {
	event := model.BookingEvent{
		Type:       eventType,
		Booking:    rec,
		OccurredAt: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal booking event", zap.Error(err))
		return
	}

	if _, err := p.js.Publish(ctx, EventSubject(eventType), data); err != nil {
		p.logger.Error("failed to publish booking event",
			zap.String("type", string(eventType)),
			zap.String("confirmation_number", rec.ConfirmationNumber),
			zap.Error(err),
		)
	}
}

// Connected reports whether the NATS connection is up.
func (p *StreamPublisher) Connected() bool {
	return p.conn != nil && p.conn.IsConnected()
}

// Close drains and closes the NATS connection.
func (p *StreamPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
