package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomdesk/booking-assistant/internal/catalog"
	"github.com/roomdesk/booking-assistant/internal/ledger"
	"github.com/roomdesk/booking-assistant/internal/model"
)

func newTestEngine(t *testing.T) (*Engine, *ledger.Ledger) {
	t.Helper()
	led := ledger.New()
	return NewEngine(catalog.New(), led), led
}

func book(t *testing.T, led *ledger.Ledger, confirmation, roomID, date, start string, duration int) {
	t.Helper()
	require.NoError(t, led.Insert(model.BookingRecord{
		ConfirmationNumber: confirmation,
		RoomID:             roomID,
		RoomName:           roomID,
		Date:               date,
		Time:               start,
		Duration:           duration,
		BookingTime:        time.Now(),
	}))
}

func TestCheckUnknownRoomFailsClosed(t *testing.T) {
	engine, _ := newTestEngine(t)

	available, reason := engine.Check("penthouse", model.ExtractedInfo{})
	assert.False(t, available)
	assert.Equal(t, ReasonUnknownRoom, reason)
}

func TestCheckCapacityExceeded(t *testing.T) {
	engine, _ := newTestEngine(t)

	// Rejected regardless of time fields being absent.
	available, reason := engine.Check("meeting_b", model.ExtractedInfo{Participants: 12})
	assert.False(t, available)
	assert.Equal(t, "Room capacity (10) is less than required (12)", reason)
}

func TestCheckMissingFacility(t *testing.T) {
	engine, _ := newTestEngine(t)

	available, reason := engine.Check("meeting_b", model.ExtractedInfo{
		Facilities: []string{"whiteboard", "catering"},
	})
	assert.False(t, available)
	assert.Equal(t, "Room does not have the required facility: catering", reason)
}

func TestCheckNoTimeRequestedIsAvailable(t *testing.T) {
	engine, led := newTestEngine(t)
	book(t, led, "BOK1", "meeting_b", "2025-03-10", "10:00", 60)

	// Absent time means no conflict check.
	available, reason := engine.Check("meeting_b", model.ExtractedInfo{Date: "2025-03-10"})
	assert.True(t, available)
	assert.Empty(t, reason)
}

func TestCheckInvalidTimeFormat(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, tc := range []model.ExtractedInfo{
		{Date: "2025-13-45", Time: "10:00"},
		{Date: "2025-03-10", Time: "25:99"},
		{Date: "next tuesday", Time: "noon"},
	} {
		available, reason := engine.Check("meeting_b", tc)
		assert.False(t, available)
		assert.Equal(t, ReasonInvalidTimeFormat, reason)
	}
}

func TestCheckOverlapConflict(t *testing.T) {
	engine, led := newTestEngine(t)
	book(t, led, "BOK20250310100000", "meeting_b", "2025-03-10", "10:00", 60)

	available, reason := engine.Check("meeting_b", model.ExtractedInfo{
		Date:     "2025-03-10",
		Time:     "10:30",
		Duration: 30,
	})
	assert.False(t, available)
	assert.Equal(t, "Time conflict with existing booking (Confirmation: BOK20250310100000)", reason)
}

func TestCheckTouchingIntervalsDoNotConflict(t *testing.T) {
	engine, led := newTestEngine(t)
	book(t, led, "BOK1", "meeting_b", "2025-03-10", "10:00", 60)

	// Starts exactly when the existing booking ends.
	available, reason := engine.Check("meeting_b", model.ExtractedInfo{
		Date:     "2025-03-10",
		Time:     "11:00",
		Duration: 30,
	})
	assert.True(t, available)
	assert.Empty(t, reason)

	// Ends exactly when the existing booking starts.
	available, _ = engine.Check("meeting_b", model.ExtractedInfo{
		Date:     "2025-03-10",
		Time:     "09:30",
		Duration: 30,
	})
	assert.True(t, available)
}

func TestCheckConflictScopedToRoomAndDate(t *testing.T) {
	engine, led := newTestEngine(t)
	book(t, led, "BOK1", "meeting_b", "2025-03-10", "10:00", 60)

	// Same slot, different room.
	available, _ := engine.Check("board_room", model.ExtractedInfo{
		Date: "2025-03-10",
		Time: "10:00",
	})
	assert.True(t, available)

	// Same room, different date.
	available, _ = engine.Check("meeting_b", model.ExtractedInfo{
		Date: "2025-03-11",
		Time: "10:00",
	})
	assert.True(t, available)
}

func TestCheckDefaultDurationIsSixtyMinutes(t *testing.T) {
	engine, led := newTestEngine(t)
	book(t, led, "BOK1", "meeting_b", "2025-03-10", "10:00", 30)

	// No duration given: the request spans 10:15-11:15 and clips the
	// existing 10:00-10:30 booking.
	available, reason := engine.Check("meeting_b", model.ExtractedInfo{
		Date: "2025-03-10",
		Time: "10:15",
	})
	assert.False(t, available)
	assert.Contains(t, reason, "Time conflict")
}

func TestCheckRequestCrossingMidnightStaysOnDate(t *testing.T) {
	engine, led := newTestEngine(t)
	book(t, led, "BOK1", "meeting_b", "2025-03-10", "23:30", 60)

	available, reason := engine.Check("meeting_b", model.ExtractedInfo{
		Date:     "2025-03-10",
		Time:     "23:45",
		Duration: 30,
	})
	assert.False(t, available)
	assert.Contains(t, reason, "BOK1")
}
