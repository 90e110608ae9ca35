// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/roomdesk/booking-assistant/internal/middleware"
	"github.com/roomdesk/booking-assistant/internal/service"
	"github.com/roomdesk/booking-assistant/pkg/logger"
)

// ChatRequest is the inbound free-text booking request.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatHandler handles the conversational booking endpoint.
type ChatHandler struct {
	assistant *service.Assistant
	logger    *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(assistant *service.Assistant, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		assistant: assistant,
		logger:    log,
	}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateChatMessage(req.Message); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Debug("chat request received",
		zap.String("correlation_id", middleware.GetCorrelationID(ctx)),
	)

	// The assistant converts every internal failure into an error envelope,
	// so the transport answer is always 200 with a structured body.
	envelope := h.assistant.Handle(ctx, req.Message)
	writeJSON(w, http.StatusOK, envelope)
}
