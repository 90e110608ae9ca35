package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomdesk/booking-assistant/internal/model"
)

func testRecord(confirmation, roomID string) model.BookingRecord {
	return model.BookingRecord{
		ConfirmationNumber:  confirmation,
		RoomID:              roomID,
		RoomName:            "Meeting Room B",
		Date:                "2025-03-10",
		Time:                "10:00",
		Duration:            60,
		Participants:        4,
		FacilitiesRequested: []string{"whiteboard"},
		BookingTime:         time.Now(),
	}
}

func TestLedgerInsertAndRemove(t *testing.T) {
	led := New()

	rec := testRecord("BOK20250310100000", "meeting_b")
	require.NoError(t, led.Insert(rec))
	assert.Equal(t, 1, led.Len())

	got, ok := led.Get(rec.ConfirmationNumber)
	require.True(t, ok)
	assert.Equal(t, rec.RoomID, got.RoomID)

	removed, err := led.Remove(rec.ConfirmationNumber)
	require.NoError(t, err)
	assert.Equal(t, rec.ConfirmationNumber, removed.ConfirmationNumber)
	assert.Equal(t, 0, led.Len())
}

func TestLedgerDuplicateConfirmation(t *testing.T) {
	led := New()

	rec := testRecord("BOK20250310100000", "meeting_b")
	require.NoError(t, led.Insert(rec))

	err := led.Insert(rec)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, led.Len())
}

func TestLedgerRemoveUnknown(t *testing.T) {
	led := New()

	_, err := led.Remove("BOK00000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLedgerForRoom(t *testing.T) {
	led := New()

	require.NoError(t, led.Insert(testRecord("BOK1", "meeting_b")))
	require.NoError(t, led.Insert(testRecord("BOK2", "meeting_b")))
	require.NoError(t, led.Insert(testRecord("BOK3", "board_room")))

	assert.Len(t, led.ForRoom("meeting_b"), 2)
	assert.Len(t, led.ForRoom("board_room"), 1)
	assert.Empty(t, led.ForRoom("conference_a"))
}

func TestLedgerSnapshotIsACopy(t *testing.T) {
	led := New()
	require.NoError(t, led.Insert(testRecord("BOK1", "meeting_b")))

	snapshot := led.Snapshot()
	delete(snapshot, "BOK1")

	assert.Equal(t, 1, led.Len())
}

func TestConfirmationSequenceFormat(t *testing.T) {
	seq := NewConfirmationSequence()
	seq.now = func() time.Time {
		return time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, "BOK20250310100000", seq.Next())
}

func TestConfirmationSequenceSameSecond(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	seq := NewConfirmationSequence()
	seq.now = func() time.Time { return now }

	first := seq.Next()
	second := seq.Next()
	third := seq.Next()

	assert.Equal(t, "BOK20250310100000", first)
	assert.Equal(t, "BOK20250310100000-1", second)
	assert.Equal(t, "BOK20250310100000-2", third)

	// A new second resets the suffix.
	now = now.Add(time.Second)
	assert.Equal(t, "BOK20250310100001", seq.Next())
}

func TestConfirmationSequenceUniqueUnderLoad(t *testing.T) {
	seq := NewConfirmationSequence()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := seq.Next()
		assert.False(t, seen[id], "duplicate confirmation number %s", id)
		seen[id] = true
	}
}
