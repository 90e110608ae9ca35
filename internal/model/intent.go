package model

// Intent values the extraction oracle is expected to produce. Anything else
// is passed through unchanged.
const (
	IntentBookRoom          = "book_room"
	IntentCheckAvailability = "check_availability"
	IntentRoomInfo          = "room_info"
	IntentCancelBooking     = "cancel_booking"
)

// DefaultDurationMinutes is used wherever a request omits the meeting
// duration.
const DefaultDurationMinutes = 60

// StructuredIntent is the payload the extraction oracle returns for a
// free-text request. The oracle is external; every field here is untrusted
// and optional except the intent tag.
type StructuredIntent struct {
	Intent          string        `json:"intent"`
	ExtractedInfo   ExtractedInfo `json:"extracted_info"`
	SuggestedRoom   string        `json:"suggested_room,omitempty"`
	ResponseMessage string        `json:"response_message,omitempty"`
}

// ExtractedInfo carries the booking details the oracle pulled out of the
// user's message. Zero values mean "not provided".
type ExtractedInfo struct {
	Date                string   `json:"date,omitempty"`
	Time                string   `json:"time,omitempty"`
	Participants        int      `json:"participants,omitempty"`
	Duration            int      `json:"duration,omitempty"`
	Facilities          []string `json:"facilities,omitempty"`
	SpecialRequirements string   `json:"special_requirements,omitempty"`
	ConfirmationNumber  string   `json:"confirmation_number,omitempty"`
}

// DurationMinutes returns the requested duration, falling back to the
// default when the oracle did not extract one.
func (e ExtractedInfo) DurationMinutes() int {
	if e.Duration <= 0 {
		return DefaultDurationMinutes
	}
	return e.Duration
}
