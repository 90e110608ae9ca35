// Package model defines data structures for the room booking assistant.
package model

// Room describes a bookable meeting room. Rooms are static reference data:
// loaded once at startup and read-only afterwards.
type Room struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Capacity   int      `json:"capacity"`
	Facilities []string `json:"facilities"`
	Location   string   `json:"location"`
}

// HasFacility reports whether the room offers the named facility.
func (r Room) HasFacility(name string) bool {
	for _, f := range r.Facilities {
		if f == name {
			return true
		}
	}
	return false
}

// RoomSummary is the per-room entry returned by availability queries.
type RoomSummary struct {
	RoomID     string   `json:"room_id"`
	Name       string   `json:"name"`
	Capacity   int      `json:"capacity"`
	Facilities []string `json:"facilities"`
	Location   string   `json:"location"`
}

// Summary converts a room into its availability-query representation.
func (r Room) Summary() RoomSummary {
	return RoomSummary{
		RoomID:     r.ID,
		Name:       r.Name,
		Capacity:   r.Capacity,
		Facilities: r.Facilities,
		Location:   r.Location,
	}
}
