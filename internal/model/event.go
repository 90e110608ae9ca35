package model

import (
	"time"
)

// EventType represents the type of booking lifecycle event.
type EventType string

const (
	EventTypeCreated   EventType = "created"
	EventTypeCancelled EventType = "cancelled"
)

// BookingEvent is published to the event stream when a booking is created or
// cancelled.
type BookingEvent struct {
	Type       EventType     `json:"type"`
	Booking    BookingRecord `json:"booking"`
	OccurredAt time.Time     `json:"occurred_at"`
}
