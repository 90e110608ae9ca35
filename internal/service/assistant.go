// Package service provides the request orchestration for the booking
// assistant.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/roomdesk/booking-assistant/internal/catalog"
	"github.com/roomdesk/booking-assistant/internal/ledger"
	"github.com/roomdesk/booking-assistant/internal/model"
	"github.com/roomdesk/booking-assistant/internal/oracle"
	"github.com/roomdesk/booking-assistant/internal/resolver"
	"github.com/roomdesk/booking-assistant/pkg/logger"
	"github.com/roomdesk/booking-assistant/pkg/metrics"
)

// ErrOracleUnavailable wraps transport failures talking to the extraction
// oracle.
var ErrOracleUnavailable = errors.New("extraction oracle unavailable")

const systemPromptTemplate = `You are a professional room booking assistant. Help users book meeting rooms.
Available rooms and their details are:
%s

Current bookings:
%s

Extract the following information from user requests:
- Required date and time (use YYYY-MM-DD format for dates)
- Number of participants
- Required facilities
- Duration of meeting (in minutes)
- Any special requirements

When suggesting rooms:
1. Check if the room has enough capacity for the participants
2. Ensure the room has the requested facilities
3. Verify the room is available at the requested time

Respond in JSON format with the following structure:
{
    "intent": "book_room/check_availability/room_info/cancel_booking",
    "extracted_info": {
        "date": "YYYY-MM-DD",
        "time": "HH:MM",
        "participants": number,
        "duration": number_in_minutes,
        "facilities": ["facility1", "facility2"],
        "special_requirements": "any special notes"
    },
    "suggested_room": "room_id",
    "response_message": "your response to user"
}
`

// Assistant accepts free-text booking requests, invokes the extraction
// oracle with a system context built from live catalog and ledger state, and
// routes the structured output through the resolver.
type Assistant struct {
	catalog  *catalog.Catalog
	ledger   *ledger.Ledger
	resolver *resolver.Resolver
	oracle   oracle.Client
	timeout  time.Duration
	logger   *logger.Logger
}

// NewAssistant creates a request orchestrator. The oracle client may be nil
// when no provider is configured; requests then degrade to error envelopes.
func NewAssistant(
	cat *catalog.Catalog,
	led *ledger.Ledger,
	res *resolver.Resolver,
	client oracle.Client,
	timeout time.Duration,
	log *logger.Logger,
) *Assistant {
	return &Assistant{
		catalog:  cat,
		ledger:   led,
		resolver: res,
		oracle:   client,
		timeout:  timeout,
		logger:   log,
	}
}

// Handle processes one free-text booking request. Every failure mode,
// including oracle timeouts and malformed oracle output, is surfaced as a
// structured error envelope rather than an error.
func (a *Assistant) Handle(ctx context.Context, message string) *model.Envelope {
	if a.oracle == nil {
		return model.ErrorEnvelope(
			"extraction oracle is not configured",
			"The booking assistant is not available right now. Please try again later.",
		)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	resp, err := a.oracle.Extract(ctx, a.systemPrompt(), message)
	if err != nil {
		status := "error"
		diagnostic := fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
		if errors.Is(err, context.DeadlineExceeded) {
			status = "timeout"
			diagnostic = fmt.Errorf("%w: timed out after %s", ErrOracleUnavailable, a.timeout)
		}
		metrics.RecordOracleCall(a.oracle.Name(), status, time.Since(start).Seconds(), 0, 0)
		a.logger.Error("extraction oracle call failed", zap.Error(err))

		return model.ErrorEnvelope(
			diagnostic.Error(),
			"I couldn't reach the booking assistant. Please try again in a moment.",
		)
	}

	metrics.RecordOracleCall(a.oracle.Name(), "success", float64(resp.LatencyMs)/1000, resp.TokensIn, resp.TokensOut)
	a.logger.Debug("extraction oracle responded",
		zap.String("provider", a.oracle.Name()),
		zap.String("model", resp.Model),
		zap.Int64("latency_ms", resp.LatencyMs),
	)

	return a.resolver.Resolve(ctx, []byte(resp.Content))
}

// systemPrompt serializes the catalog and the current ledger into the
// oracle's system context so its suggestions reflect live state.
func (a *Assistant) systemPrompt() string {
	roomsInfo, err := json.MarshalIndent(a.catalog.Map(), "", "  ")
	if err != nil {
		roomsInfo = []byte("{}")
	}

	bookingsInfo := "No current bookings"
	if snapshot := a.ledger.Snapshot(); len(snapshot) > 0 {
		if data, err := json.MarshalIndent(snapshot, "", "  "); err == nil {
			bookingsInfo = string(data)
		}
	}

	return fmt.Sprintf(systemPromptTemplate, roomsInfo, bookingsInfo)
}
