package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/suggestion"
)

type suggestionService interface {
	Create(ctx context.Context, input suggestion.CreateInput) (*domain.Suggestion, error)
	List(ctx context.Context) ([]domain.SuggestionView, error)
	Review(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus) (*domain.Suggestion, error)
}

// SuggestionHandler serves /api/game-suggestions.
type SuggestionHandler struct {
	svc suggestionService
	log *slog.Logger
}

// NewSuggestionHandler creates a SuggestionHandler.
func NewSuggestionHandler(svc suggestionService, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{svc: svc, log: logger.With("handler", "suggestions")}
}

// List handles GET /api/game-suggestions.
func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

type suggestionRequest struct {
	GameTitle   string `json:"game_title"`
	Description string `json:"description"`
}

// Create handles POST /api/game-suggestions.
func (h *SuggestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s, err := h.svc.Create(r.Context(), suggestion.CreateInput{Title: req.GameTitle, Description: req.Description})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

type reviewSuggestionRequest struct {
	Status domain.SuggestionStatus `json:"status"`
}

// Review handles PUT /api/game-suggestions/{id}.
func (h *SuggestionHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req reviewSuggestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s, err := h.svc.Review(r.Context(), id, req.Status)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
