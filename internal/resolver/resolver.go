// Package resolver dispatches structured intents to booking, cancellation,
// and availability handling.
package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/roomdesk/booking-assistant/internal/availability"
	"github.com/roomdesk/booking-assistant/internal/catalog"
	"github.com/roomdesk/booking-assistant/internal/events"
	"github.com/roomdesk/booking-assistant/internal/ledger"
	"github.com/roomdesk/booking-assistant/internal/model"
	"github.com/roomdesk/booking-assistant/pkg/logger"
	"github.com/roomdesk/booking-assistant/pkg/metrics"
)

// Resolver interprets oracle payloads and applies them to the ledger. It is
// stateless between calls; all state lives in the ledger.
type Resolver struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	engine  *availability.Engine
	seq     *ledger.ConfirmationSequence
	events  events.Publisher
	logger  *logger.Logger

	// mu serializes ledger mutations so the availability check and the
	// insert it guards act as one step.
	mu sync.Mutex
}

// New creates a resolver over the given catalog, ledger and engine.
func New(
	cat *catalog.Catalog,
	led *ledger.Ledger,
	engine *availability.Engine,
	pub events.Publisher,
	log *logger.Logger,
) *Resolver {
	return &Resolver{
		catalog: cat,
		ledger:  led,
		engine:  engine,
		seq:     ledger.NewConfirmationSequence(),
		events:  pub,
		logger:  log,
	}
}

// Resolve parses a raw oracle payload and dispatches on its intent tag.
// Every failure mode produces an error envelope; Resolve never panics or
// returns a raw parse error to its caller.
func (r *Resolver) Resolve(ctx context.Context, payload []byte) *model.Envelope {
	raw := stripCodeFences(payload)

	var intent model.StructuredIntent
	if err := json.Unmarshal(raw, &intent); err != nil {
		r.logger.Error("failed to parse oracle payload", zap.Error(err))
		return model.ErrorEnvelope(
			"Failed to process request. The response couldn't be parsed correctly.",
			"",
		)
	}

	if intent.Intent == "" {
		return model.ErrorEnvelope("missing intent in extracted payload", "")
	}

	metrics.IntentsTotal.WithLabelValues(intent.Intent).Inc()

	switch intent.Intent {
	case model.IntentBookRoom:
		return r.book(ctx, &intent)
	case model.IntentCheckAvailability:
		return r.checkAvailability(&intent)
	case model.IntentCancelBooking:
		return r.cancel(ctx, &intent)
	default:
		// room_info and anything else the oracle produces: pass the payload
		// through unchanged.
		return &model.Envelope{Passthrough: json.RawMessage(raw)}
	}
}

func (r *Resolver) book(ctx context.Context, intent *model.StructuredIntent) *model.Envelope {
	room, ok := r.catalog.Get(intent.SuggestedRoom)
	if intent.SuggestedRoom == "" || !ok {
		return model.ErrorEnvelope(
			"No suitable room found or invalid room suggested",
			"I couldn't find a suitable room for your requirements. Could you please adjust your criteria?",
		)
	}

	info := intent.ExtractedInfo

	r.mu.Lock()
	defer r.mu.Unlock()

	available, reason := r.engine.Check(room.ID, info)
	metrics.RecordAvailabilityCheck(available)
	if !available {
		return &model.Envelope{
			Status:          model.StatusUnavailable,
			Message:         reason,
			ResponseMessage: fmt.Sprintf("I'm sorry, but %s is not available at that time. %s", room.Name, reason),
		}
	}

	facilities := info.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	rec := model.BookingRecord{
		ConfirmationNumber:  r.seq.Next(),
		RoomID:              room.ID,
		RoomName:            room.Name,
		Date:                info.Date,
		Time:                info.Time,
		Duration:            info.DurationMinutes(),
		Participants:        info.Participants,
		FacilitiesRequested: facilities,
		SpecialRequirements: info.SpecialRequirements,
		BookingTime:         time.Now(),
	}

	if err := r.ledger.Insert(rec); err != nil {
		r.logger.Error("failed to store booking",
			zap.String("confirmation_number", rec.ConfirmationNumber),
			zap.Error(err),
		)
		return model.ErrorEnvelope(
			"Failed to store the booking: "+err.Error(),
			"Something went wrong while confirming your booking. Please try again.",
		)
	}

	metrics.BookingsTotal.WithLabelValues(room.ID).Inc()
	metrics.ActiveBookings.Set(float64(r.ledger.Len()))
	r.events.BookingCreated(ctx, rec)

	r.logger.Info("booking confirmed",
		zap.String("confirmation_number", rec.ConfirmationNumber),
		zap.String("room_id", room.ID),
		zap.String("date", rec.Date),
		zap.String("time", rec.Time),
	)

	return &model.Envelope{
		Status:             model.StatusSuccess,
		BookingDetails:     &rec,
		ConfirmationNumber: rec.ConfirmationNumber,
		ResponseMessage: fmt.Sprintf(
			"Great! I've booked %s for you on %s at %s. Your confirmation number is %s.",
			room.Name, rec.Date, rec.Time, rec.ConfirmationNumber,
		),
	}
}

func (r *Resolver) checkAvailability(intent *model.StructuredIntent) *model.Envelope {
	available := make([]model.RoomSummary, 0)

	for _, room := range r.catalog.List() {
		if intent.SuggestedRoom != "" && room.ID != intent.SuggestedRoom {
			continue
		}

		ok, _ := r.engine.Check(room.ID, intent.ExtractedInfo)
		metrics.RecordAvailabilityCheck(ok)
		if ok {
			available = append(available, room.Summary())
		}
	}

	responseMessage := intent.ResponseMessage
	if responseMessage == "" {
		responseMessage = "Here are the available rooms for your criteria."
	}

	return &model.Envelope{
		Status:          model.StatusSuccess,
		AvailableRooms:  available,
		ResponseMessage: responseMessage,
	}
}

func (r *Resolver) cancel(ctx context.Context, intent *model.StructuredIntent) *model.Envelope {
	confirmationNumber := intent.ExtractedInfo.ConfirmationNumber

	invalid := func() *model.Envelope {
		return model.ErrorEnvelope(
			"Invalid or missing confirmation number",
			"I couldn't find a booking with that confirmation number. Please check and try again.",
		)
	}

	if confirmationNumber == "" {
		return invalid()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, err := r.ledger.Remove(confirmationNumber)
	if err != nil {
		if !errors.Is(err, ledger.ErrNotFound) {
			r.logger.Error("failed to cancel booking",
				zap.String("confirmation_number", confirmationNumber),
				zap.Error(err),
			)
		}
		return invalid()
	}

	metrics.CancellationsTotal.WithLabelValues(rec.RoomID).Inc()
	metrics.ActiveBookings.Set(float64(r.ledger.Len()))
	r.events.BookingCancelled(ctx, rec)

	r.logger.Info("booking cancelled",
		zap.String("confirmation_number", confirmationNumber),
		zap.String("room_id", rec.RoomID),
	)

	return &model.Envelope{
		Status:           model.StatusSuccess,
		CancelledBooking: &rec,
		ResponseMessage: fmt.Sprintf(
			"I've cancelled your booking for %s on %s at %s. Your confirmation number was %s.",
			rec.RoomName, rec.Date, rec.Time, confirmationNumber,
		),
	}
}

// stripCodeFences removes a surrounding markdown code fence, which chat
// models sometimes wrap around JSON output.
func stripCodeFences(payload []byte) []byte {
	s := strings.TrimSpace(string(payload))
	if !strings.HasPrefix(s, "```") {
		return []byte(s)
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}
