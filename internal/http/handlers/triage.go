package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/healthbridge/telemed-triage/internal/chat"
	"github.com/healthbridge/telemed-triage/internal/triage"
	"github.com/healthbridge/telemed-triage/pkg/logging"
)

// processingErrorMessage is returned when the triage pipeline itself
// faults. It is the only path on which the handler answers 500.
const processingErrorMessage = "I apologize, but I'm having trouble processing your request right now. Please try again or consult a healthcare provider directly."

// TriageHandler serves the patient chat-advice endpoint.
type TriageHandler struct {
	composer *triage.Composer
	store    chat.Store
	logger   *logging.Logger
}

// NewTriageHandler creates the chat-advice handler. The store may be
// nil, in which case transcripts are not persisted.
func NewTriageHandler(composer *triage.Composer, store chat.Store, logger *logging.Logger) *TriageHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &TriageHandler{
		composer: composer,
		store:    store,
		logger:   logger,
	}
}

type chatRequest struct {
	Message  string `json:"message"`
	RoomID   string `json:"roomId"`
	SenderID string `json:"senderId"`
}

// Chat handles POST /api/chat.
func (h *TriageHandler) Chat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("chat request panicked", "panic", rec)
			writeError(w, http.StatusInternalServerError, processingErrorMessage)
		}
	}()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Symptom query is required")
		return
	}

	resp := h.composer.ComposeChat(r.Context(), req.Message)
	h.persist(r, req, resp)

	writeJSON(w, http.StatusOK, resp)
}

// persist appends the exchange to the room transcript. Persistence
// failures are logged and never affect the response.
func (h *TriageHandler) persist(r *http.Request, req chatRequest, resp triage.ChatResponse) {
	if h.store == nil || strings.TrimSpace(req.RoomID) == "" {
		return
	}
	ctx := r.Context()

	if _, err := h.store.Append(ctx, chat.Message{
		RoomID:     req.RoomID,
		SenderID:   req.SenderID,
		SenderType: chat.SenderPatient,
		Text:       req.Message,
	}); err != nil {
		h.logger.Warn("failed to persist patient message", "room_id", req.RoomID, "error", err)
		return
	}
	if _, err := h.store.Append(ctx, chat.Message{
		RoomID:     req.RoomID,
		SenderID:   chat.SenderAssistant,
		SenderType: chat.SenderAssistant,
		Text:       resp.Message,
	}); err != nil {
		h.logger.Warn("failed to persist assistant message", "room_id", req.RoomID, "error", err)
	}
}
