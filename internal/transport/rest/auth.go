package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gamecatalog-backend/internal/service/account"
)

type loginService interface {
	Login(ctx context.Context, input account.LoginInput) (*account.LoginResult, error)
}

// AuthHandler serves the Telegram login endpoint.
type AuthHandler struct {
	svc loginService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc loginService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type telegramLoginRequest struct {
	InitData string `json:"init_data"`
}

// TelegramLogin handles POST /api/auth/telegram.
func (h *AuthHandler) TelegramLogin(w http.ResponseWriter, r *http.Request) {
	var req telegramLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Login(r.Context(), account.LoginInput{InitData: req.InitData})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

