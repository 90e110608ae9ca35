// Package availability decides whether a room can take a requested booking.
package availability

import (
	"fmt"
	"time"

	"github.com/roomdesk/booking-assistant/internal/catalog"
	"github.com/roomdesk/booking-assistant/internal/ledger"
	"github.com/roomdesk/booking-assistant/internal/model"
)

// dateTimeLayout is the combined date and time format requests must use.
const dateTimeLayout = "2006-01-02 15:04"

// Reasons returned for the non-conflict rejection cases.
const (
	ReasonUnknownRoom       = "Room does not exist"
	ReasonInvalidTimeFormat = "Invalid date or time format"
)

// Engine checks a requested booking against a room's static constraints and
// the current ledger.
type Engine struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
}

// NewEngine creates an availability engine over the given catalog and ledger.
func NewEngine(cat *catalog.Catalog, led *ledger.Ledger) *Engine {
	return &Engine{catalog: cat, ledger: led}
}

// Check reports whether the room can take the requested booking. When it
// cannot, the reason names the first blocking constraint: capacity deficit,
// missing facility, unparseable date/time, or the conflicting booking's
// confirmation number. An unknown room fails closed.
func (e *Engine) Check(roomID string, info model.ExtractedInfo) (bool, string) {
	room, ok := e.catalog.Get(roomID)
	if !ok {
		return false, ReasonUnknownRoom
	}

	if info.Participants > room.Capacity {
		return false, fmt.Sprintf("Room capacity (%d) is less than required (%d)", room.Capacity, info.Participants)
	}

	for _, facility := range info.Facilities {
		if !room.HasFacility(facility) {
			return false, "Room does not have the required facility: " + facility
		}
	}

	// Without a concrete date and time there is nothing to conflict with.
	if info.Date == "" || info.Time == "" {
		return true, ""
	}

	requestedStart, err := time.Parse(dateTimeLayout, info.Date+" "+info.Time)
	if err != nil {
		return false, ReasonInvalidTimeFormat
	}
	requestedEnd := requestedStart.Add(time.Duration(info.DurationMinutes()) * time.Minute)

	for _, booking := range e.ledger.ForRoom(roomID) {
		if booking.Date != info.Date {
			continue
		}

		bookingStart, err := time.Parse(dateTimeLayout, booking.Date+" "+booking.Time)
		if err != nil {
			// A ledger entry that cannot be parsed was validated at insert
			// time with the same layout, so this only happens if the record
			// was constructed outside the booking path. Skip it.
			continue
		}
		bookingEnd := bookingStart.Add(time.Duration(booking.Duration) * time.Minute)

		// Half-open interval overlap: touching endpoints do not conflict.
		if requestedStart.Before(bookingEnd) && requestedEnd.After(bookingStart) {
			return false, fmt.Sprintf("Time conflict with existing booking (Confirmation: %s)", booking.ConfirmationNumber)
		}
	}

	return true, ""
}
