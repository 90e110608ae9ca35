package ledger

import (
	"fmt"
	"sync"
	"time"
)

// confirmationPrefix tags every confirmation number issued by this service.
const confirmationPrefix = "BOK"

// ConfirmationSequence issues confirmation numbers derived from the current
// timestamp at second granularity. Two numbers issued within the same second
// get a monotonic suffix, so the sequence never collides under concurrent
// bookings.
type ConfirmationSequence struct {
	mu        sync.Mutex
	lastStamp string
	lastSeq   int
	now       func() time.Time
}

// NewConfirmationSequence creates a sequence using the wall clock.
func NewConfirmationSequence() *ConfirmationSequence {
	return &ConfirmationSequence{now: time.Now}
}

// Next returns the next unique confirmation number.
func (s *ConfirmationSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.now().Format("20060102150405")
	if stamp == s.lastStamp {
		s.lastSeq++
		return fmt.Sprintf("%s%s-%d", confirmationPrefix, stamp, s.lastSeq)
	}

	s.lastStamp = stamp
	s.lastSeq = 0
	return confirmationPrefix + stamp
}
