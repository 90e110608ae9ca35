package model

import (
	"time"
)

// BookingRecord is a confirmed reservation held in the ledger. Records are
// immutable once created; cancellation removes them wholesale.
type BookingRecord struct {
	ConfirmationNumber  string    `json:"confirmation_number"`
	RoomID              string    `json:"room_id"`
	RoomName            string    `json:"room_name"`
	Date                string    `json:"date"`
	Time                string    `json:"time"`
	Duration            int       `json:"duration"`
	Participants        int       `json:"participants"`
	FacilitiesRequested []string  `json:"facilities_requested"`
	SpecialRequirements string    `json:"special_requirements"`
	BookingTime         time.Time `json:"booking_time"`
}
