package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/healthbridge/telemed-triage/internal/chat"
	"github.com/healthbridge/telemed-triage/pkg/logging"
)

// ChatHistoryHandler serves the staff-facing transcript endpoints.
type ChatHistoryHandler struct {
	store  chat.Store
	logger *logging.Logger
}

// NewChatHistoryHandler creates the transcript handler.
func NewChatHistoryHandler(store chat.Store, logger *logging.Logger) *ChatHistoryHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChatHistoryHandler{store: store, logger: logger}
}

type historyResponse struct {
	Success  bool           `json:"success"`
	RoomID   string         `json:"roomId"`
	Messages []chat.Message `json:"messages"`
}

// History handles GET /api/chat/history/{roomID}.
func (h *ChatHistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	roomID := strings.TrimSpace(chi.URLParam(r, "roomID"))
	if roomID == "" {
		writeError(w, http.StatusBadRequest, "room id is required")
		return
	}

	messages, err := h.store.History(r.Context(), roomID)
	if err != nil {
		h.logger.Error("failed to load chat history", "room_id", roomID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load chat history")
		return
	}
	if messages == nil {
		messages = []chat.Message{}
	}
	writeJSON(w, http.StatusOK, historyResponse{
		Success:  true,
		RoomID:   roomID,
		Messages: messages,
	})
}

type roomsResponse struct {
	Success bool               `json:"success"`
	Rooms   []chat.RoomSummary `json:"rooms"`
}

// Rooms handles GET /api/chat/rooms.
func (h *ChatHistoryHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.store.ListRooms(r.Context())
	if err != nil {
		h.logger.Error("failed to list chat rooms", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list chat rooms")
		return
	}
	if rooms == nil {
		rooms = []chat.RoomSummary{}
	}
	writeJSON(w, http.StatusOK, roomsResponse{Success: true, Rooms: rooms})
}
