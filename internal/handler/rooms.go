package handler

import (
	"net/http"

	"github.com/roomdesk/booking-assistant/internal/catalog"
)

// RoomHandler serves the room catalog.
type RoomHandler struct {
	catalog *catalog.Catalog
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(cat *catalog.Catalog) *RoomHandler {
	return &RoomHandler{catalog: cat}
}

// List handles GET /rooms
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Map())
}
