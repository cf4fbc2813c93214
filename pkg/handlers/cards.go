package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mandys/cardqa/pkg/cards"
)

// CardSummary describes one loaded card for the listing endpoint.
type CardSummary struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Bank string `json:"bank,omitempty"`
}

// CardsListResponse for GET /api/cards.
type CardsListResponse struct {
	Cards []CardSummary `json:"cards"`
	Total int           `json:"total"`
}

// CardsHandler exposes the loaded card registry.
type CardsHandler struct {
	registry *cards.Registry
	logger   *zap.Logger
}

// NewCardsHandler creates a new cards handler.
func NewCardsHandler(registry *cards.Registry, logger *zap.Logger) *CardsHandler {
	return &CardsHandler{registry: registry, logger: logger}
}

// RegisterRoutes registers the cards handler's routes on the given mux.
func (h *CardsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/cards", h.List)
}

// List handles GET /api/cards.
func (h *CardsHandler) List(w http.ResponseWriter, r *http.Request) {
	records := h.registry.Cards(nil)
	summaries := make([]CardSummary, 0, len(records))
	for _, c := range records {
		summaries = append(summaries, CardSummary{
			ID:   string(c.CardID),
			Name: c.Name,
			Bank: c.Bank,
		})
	}

	response := CardsListResponse{Cards: summaries, Total: len(summaries)}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
