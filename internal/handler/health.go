package handler

import (
	"net/http"

	"github.com/roomdesk/booking-assistant/internal/events"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	events events.Publisher
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(pub events.Publisher) *HealthHandler {
	return &HealthHandler{events: pub}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Room Booking API is running",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.events == nil || !h.events.Connected() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "event stream not connected",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
