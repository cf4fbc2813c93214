package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mandys/cardqa/pkg/apperrors"
	"github.com/mandys/cardqa/pkg/logging"
	"github.com/mandys/cardqa/pkg/models"
	"github.com/mandys/cardqa/pkg/services"
)

// ChatRequest for POST /api/chat.
type ChatRequest struct {
	Query   string                `json:"query"`
	History []models.ChatExchange `json:"history,omitempty"`
}

// ChatHandler handles conversational QA requests.
type ChatHandler struct {
	queryService *services.QueryService
	logger       *zap.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(queryService *services.QueryService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{queryService: queryService, logger: logger}
}

// RegisterRoutes registers the chat handler's routes on the given mux.
func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/chat", h.Chat)
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "missing_query", apperrors.ErrEmptyQuery.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	h.logger.Debug("Chat request",
		zap.String("query", logging.SanitizeQuery(req.Query)),
		zap.Int("history_len", len(req.History)))

	result := h.queryService.Answer(r.Context(), req.Query, req.History)

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: result}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
