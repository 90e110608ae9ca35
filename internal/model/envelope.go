package model

import (
	"encoding/json"
)

// Envelope statuses.
const (
	StatusSuccess     = "success"
	StatusError       = "error"
	StatusUnavailable = "unavailable"
)

// Envelope is the uniform result returned for every processed request.
// Exactly which optional fields are set depends on the intent that produced
// it. For informational intents the oracle payload is passed through
// unchanged via Passthrough and the other fields are ignored.
type Envelope struct {
	Status             string         `json:"status,omitempty"`
	Message            string         `json:"message,omitempty"`
	ResponseMessage    string         `json:"response_message,omitempty"`
	BookingDetails     *BookingRecord `json:"booking_details,omitempty"`
	ConfirmationNumber string         `json:"confirmation_number,omitempty"`
	AvailableRooms     []RoomSummary  `json:"available_rooms,omitempty"`
	CancelledBooking   *BookingRecord `json:"cancelled_booking,omitempty"`

	// Passthrough holds the raw oracle payload for intents the resolver does
	// not act on (room_info and any unrecognized intent).
	Passthrough json.RawMessage `json:"-"`
}

// MarshalJSON emits the passthrough payload verbatim when one is set,
// otherwise the envelope fields.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	if e.Passthrough != nil {
		return e.Passthrough, nil
	}
	type envelope Envelope
	return json.Marshal((*envelope)(e))
}

// ErrorEnvelope builds a uniform error envelope.
func ErrorEnvelope(message, responseMessage string) *Envelope {
	return &Envelope{
		Status:          StatusError,
		Message:         message,
		ResponseMessage: responseMessage,
	}
}
