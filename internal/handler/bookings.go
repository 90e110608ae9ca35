package handler

import (
	"net/http"

	"github.com/roomdesk/booking-assistant/internal/ledger"
)

// BookingHandler serves the current booking ledger.
type BookingHandler struct {
	ledger *ledger.Ledger
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(led *ledger.Ledger) *BookingHandler {
	return &BookingHandler{ledger: led}
}

// List handles GET /bookings
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Snapshot())
}
