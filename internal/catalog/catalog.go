// Package catalog holds the static room reference data.
package catalog

import (
	"github.com/roomdesk/booking-assistant/internal/model"
)

// Catalog is the fixed set of bookable rooms. It is populated once at
// startup and exposes no mutation operations.
type Catalog struct {
	rooms []model.Room
	index map[string]model.Room
}

// New returns the catalog with the built-in room inventory.
func New() *Catalog {
	rooms := []model.Room{
		{
			ID:         "conference_a",
			Name:       "Conference Room A",
			Capacity:   20,
			Facilities: []string{"projector", "whiteboard", "video_conferencing"},
			Location:   "First Floor",
		},
		{
			ID:         "meeting_b",
			Name:       "Meeting Room B",
			Capacity:   10,
			Facilities: []string{"whiteboard", "video_conferencing"},
			Location:   "Second Floor",
		},
		{
			ID:         "board_room",
			Name:       "Board Room",
			Capacity:   15,
			Facilities: []string{"projector", "video_conferencing", "catering"},
			Location:   "Third Floor",
		},
	}

	index := make(map[string]model.Room, len(rooms))
	for _, r := range rooms {
		index[r.ID] = r
	}

	return &Catalog{rooms: rooms, index: index}
}

// List returns all rooms in a stable order.
func (c *Catalog) List() []model.Room {
	out := make([]model.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// Get looks up a room by identifier.
func (c *Catalog) Get(id string) (model.Room, bool) {
	room, ok := c.index[id]
	return room, ok
}

// Map returns the catalog keyed by room identifier.
func (c *Catalog) Map() map[string]model.Room {
	out := make(map[string]model.Room, len(c.rooms))
	for id, room := range c.index {
		out[id] = room
	}
	return out
}
