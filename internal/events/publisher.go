// Package events publishes booking lifecycle events to NATS JetStream.
package events

import (
	"context"

	"github.com/roomdesk/booking-assistant/internal/model"
)

// Publisher emits booking lifecycle events. Publishing is best-effort: a
// failed publish must never fail the booking that triggered it.
type Publisher interface {
	// BookingCreated announces a newly confirmed booking.
	BookingCreated(ctx context.Context, rec model.BookingRecord)

	// BookingCancelled announces a cancelled booking.
	BookingCancelled(ctx context.Context, rec model.BookingRecord)

	// Connected reports whether the underlying transport is usable.
	Connected() bool

	// Close releases the underlying connection.
	Close()
}

// NopPublisher discards all events. Used when no event stream is configured.
type NopPublisher struct{}

// BookingCreated is a no-op.
func (NopPublisher) BookingCreated(context.Context, model.BookingRecord) {}

// BookingCancelled is a no-op.
func (NopPublisher) BookingCancelled(context.Context, model.BookingRecord) {}

// Connected always reports true.
func (NopPublisher) Connected() bool { return true }

// Close is a no-op.
func (NopPublisher) Close() {}
