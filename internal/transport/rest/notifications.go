package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/internal/service/notification"
)

type notificationService interface {
	List(ctx context.Context) (*notification.Inbox, error)
	MarkRead(ctx context.Context, id uuid.UUID, read bool) (*domain.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}

// NotificationHandler serves the caller's inbox.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notifications")}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	inbox, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, inbox)
}

type markReadRequest struct {
	Read *bool `json:"read"`
}

// MarkRead handles PUT /api/notifications/{id}. A missing body marks as read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	read := true
	if r.ContentLength != 0 {
		var req markReadRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Read != nil {
			read = *req.Read
		}
	}

	n, err := h.svc.MarkRead(r.Context(), id, read)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// MarkAllRead handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	updated, err := h.svc.MarkAllRead(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

// Delete handles DELETE /api/notifications/{id}.
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/notifications.
func (h *NotificationHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
