package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

type favoriteService interface {
	List(ctx context.Context, accountID uuid.UUID) ([]domain.Entry, error)
	Add(ctx context.Context, entryID uuid.UUID) (*domain.Favorite, error)
	Remove(ctx context.Context, entryID uuid.UUID) error
	IsFavorite(ctx context.Context, entryID uuid.UUID) (bool, error)
}

// FavoriteHandler serves /api/favorites.
type FavoriteHandler struct {
	svc favoriteService
	log *slog.Logger
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(svc favoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, log: logger.With("handler", "favorites")}
}

// List handles GET /api/favorites. Without ?user_id= the caller's list is returned.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := ctxutil.UserIDFromCtx(r.Context())
	if r.URL.Query().Get("user_id") != "" {
		id, err := queryUUID(r, "user_id")
		if err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		accountID, ok = id, true
	}
	if !ok {
		writeDomainError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	entries, err := h.svc.List(r.Context(), accountID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

type favoriteRequest struct {
	GameID uuid.UUID `json:"game_id"`
}

// Add handles POST /api/favorites.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fav, err := h.svc.Add(r.Context(), req.GameID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

// Remove handles DELETE /api/favorites?game_id=.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	entryID, err := queryUUID(r, "game_id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.svc.Remove(r.Context(), entryID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Check handles GET /api/favorites/check?game_id=.
func (h *FavoriteHandler) Check(w http.ResponseWriter, r *http.Request) {
	entryID, err := queryUUID(r, "game_id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	exists, err := h.svc.IsFavorite(r.Context(), entryID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_favorite": exists})
}
