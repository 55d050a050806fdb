package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/account"
)

type accountService interface {
	Me(ctx context.Context) (*account.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*account.Profile, error)
	List(ctx context.Context) ([]domain.Account, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input account.UpdateProfileInput) (*domain.Account, error)
}

// UserHandler serves /api/users.
type UserHandler struct {
	svc accountService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc accountService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Me(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	profile, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type updateProfileRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
}

// Update handles PUT /api/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	acc, err := h.svc.UpdateProfile(r.Context(), id, account.UpdateProfileInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}
