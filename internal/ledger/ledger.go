// Package ledger provides the in-memory store of confirmed bookings.
package ledger

import (
	"errors"
	"sync"

	"github.com/roomdesk/booking-assistant/internal/model"
)

var (
	// ErrNotFound is returned when a confirmation number is not in the ledger.
	ErrNotFound = errors.New("booking not found")

	// ErrDuplicateID is returned when inserting a record whose confirmation
	// number is already present.
	ErrDuplicateID = errors.New("duplicate confirmation number")
)

// Ledger maps confirmation numbers to booking records. All mutations go
// through a single mutex so concurrent inserts never leave a partially
// applied record visible to availability checks.
type Ledger struct {
	mu       sync.RWMutex
	bookings map[string]model.BookingRecord
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		bookings: make(map[string]model.BookingRecord),
	}
}

// Insert stores a record under its confirmation number.
func (l *Ledger) Insert(rec model.BookingRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.bookings[rec.ConfirmationNumber]; exists {
		return ErrDuplicateID
	}

	l.bookings[rec.ConfirmationNumber] = rec
	return nil
}

// Remove deletes a record and returns it.
func (l *Ledger) Remove(confirmationNumber string) (model.BookingRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, exists := l.bookings[confirmationNumber]
	if !exists {
		return model.BookingRecord{}, ErrNotFound
	}

	delete(l.bookings, confirmationNumber)
	return rec, nil
}

// Get looks up a record without removing it.
func (l *Ledger) Get(confirmationNumber string) (model.BookingRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rec, exists := l.bookings[confirmationNumber]
	return rec, exists
}

// ForRoom returns the current bookings for a room. Each call is a fresh
// query over the live ledger, not a cursor.
func (l *Ledger) ForRoom(roomID string) []model.BookingRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []model.BookingRecord
	for _, rec := range l.bookings {
		if rec.RoomID == roomID {
			out = append(out, rec)
		}
	}
	return out
}

// Snapshot returns a copy of the full ledger keyed by confirmation number.
func (l *Ledger) Snapshot() map[string]model.BookingRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]model.BookingRecord, len(l.bookings))
	for id, rec := range l.bookings {
		out[id] = rec
	}
	return out
}

// Len returns the number of current bookings.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}
