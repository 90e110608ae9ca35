package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomdesk/booking-assistant/internal/availability"
	"github.com/roomdesk/booking-assistant/internal/catalog"
	"github.com/roomdesk/booking-assistant/internal/events"
	"github.com/roomdesk/booking-assistant/internal/ledger"
	"github.com/roomdesk/booking-assistant/internal/model"
	"github.com/roomdesk/booking-assistant/internal/oracle"
	"github.com/roomdesk/booking-assistant/internal/resolver"
	"github.com/roomdesk/booking-assistant/pkg/logger"
)

// fakeOracle is a scripted oracle client for tests.
type fakeOracle struct {
	content string
	err     error
	delay   time.Duration

	gotSystem string
	gotUser   string
}

func (f *fakeOracle) Extract(ctx context.Context, systemPrompt, userMessage string) (*oracle.Response, error) {
	f.gotSystem = systemPrompt
	f.gotUser = userMessage

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}

	if f.err != nil {
		return nil, f.err
	}

	return &oracle.Response{
		Content:   f.content,
		Model:     "fake-model",
		TokensIn:  100,
		TokensOut: 50,
		LatencyMs: 5,
	}, nil
}

func (f *fakeOracle) Name() string { return "fake" }

func newTestAssistant(t *testing.T, client oracle.Client, timeout time.Duration) (*Assistant, *ledger.Ledger) {
	t.Helper()
	cat := catalog.New()
	led := ledger.New()
	engine := availability.NewEngine(cat, led)
	res := resolver.New(cat, led, engine, events.NopPublisher{}, logger.NewNop())
	return NewAssistant(cat, led, res, client, timeout, logger.NewNop()), led
}

func TestHandleBookingRequest(t *testing.T) {
	fake := &fakeOracle{
		content: `{"intent":"book_room","suggested_room":"meeting_b","extracted_info":{"date":"2025-03-10","time":"10:00","duration":60,"participants":8}}`,
	}
	assistant, led := newTestAssistant(t, fake, time.Second)

	env := assistant.Handle(context.Background(), "Book meeting room B tomorrow at 10 for 8 people")

	require.Equal(t, model.StatusSuccess, env.Status)
	assert.Equal(t, 1, led.Len())
	assert.Equal(t, "Book meeting room B tomorrow at 10 for 8 people", fake.gotUser)
}

func TestHandleSystemPromptReflectsLiveState(t *testing.T) {
	fake := &fakeOracle{
		content: `{"intent":"book_room","suggested_room":"meeting_b","extracted_info":{"date":"2025-03-10","time":"10:00"}}`,
	}
	assistant, _ := newTestAssistant(t, fake, time.Second)

	first := assistant.Handle(context.Background(), "book it")
	require.Equal(t, model.StatusSuccess, first.Status)

	// The first call saw an empty ledger.
	assert.Contains(t, fake.gotSystem, "meeting_b")
	assert.Contains(t, fake.gotSystem, "Conference Room A")
	assert.Contains(t, fake.gotSystem, "No current bookings")

	fake.content = `{"intent":"room_info","response_message":"ok"}`
	assistant.Handle(context.Background(), "what do I have booked?")

	// The second call's context carries the confirmed booking.
	assert.Contains(t, fake.gotSystem, first.ConfirmationNumber)
	assert.NotContains(t, fake.gotSystem, "No current bookings")
}

func TestHandleOracleTimeout(t *testing.T) {
	fake := &fakeOracle{delay: 5 * time.Second}
	assistant, led := newTestAssistant(t, fake, 50*time.Millisecond)

	start := time.Now()
	env := assistant.Handle(context.Background(), "book a room")

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, model.StatusError, env.Status)
	assert.Contains(t, env.Message, "timed out")
	assert.Equal(t, 0, led.Len())
}

func TestHandleOracleFailure(t *testing.T) {
	fake := &fakeOracle{err: errors.New("connection refused")}
	assistant, _ := newTestAssistant(t, fake, time.Second)

	env := assistant.Handle(context.Background(), "book a room")

	assert.Equal(t, model.StatusError, env.Status)
	assert.Contains(t, env.Message, "extraction oracle unavailable")
	assert.NotEmpty(t, env.ResponseMessage)
}

func TestHandleMalformedOracleOutput(t *testing.T) {
	fake := &fakeOracle{content: "Sure, I'd be happy to help!"}
	assistant, led := newTestAssistant(t, fake, time.Second)

	env := assistant.Handle(context.Background(), "book a room")

	assert.Equal(t, model.StatusError, env.Status)
	assert.Contains(t, env.Message, "couldn't be parsed")
	assert.Equal(t, 0, led.Len())
}

func TestHandleWithoutOracle(t *testing.T) {
	assistant, _ := newTestAssistant(t, nil, time.Second)

	env := assistant.Handle(context.Background(), "book a room")

	assert.Equal(t, model.StatusError, env.Status)
	assert.Contains(t, env.Message, "not configured")
}
