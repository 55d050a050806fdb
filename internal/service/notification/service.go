package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/config"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
	"github.com/heartmarshall/gamecatalog-backend/pkg/ctxutil"
)

type notificationRepo interface {
	List(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, accountID uuid.UUID) (int64, error)
	SetRead(ctx context.Context, accountID uuid.UUID, id uuid.UUID, read bool) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, accountID uuid.UUID) (int, error)
	Delete(ctx context.Context, accountID uuid.UUID, id uuid.UUID) error
	DeleteAll(ctx context.Context, accountID uuid.UUID) (int64, error)
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// cleanupObserver records how many notifications a cleanup run removed.
type cleanupObserver interface {
	ObserveNotificationsCleanup(removed int)
}

// Service manages an account's notification inbox.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	observer      cleanupObserver
	cfg           config.NotificationConfig
	now           func() time.Time
}

// NewService creates a new notification service. observer may be nil.
func NewService(
	logger *slog.Logger,
	notifications notificationRepo,
	observer cleanupObserver,
	cfg config.NotificationConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		observer:      observer,
		cfg:           cfg,
		now:           time.Now,
	}
}

// Inbox is the latest notifications of an account with its unread count.
type Inbox struct {
	Items  []domain.Notification `json:"notifications"`
	Unread int64                 `json:"unread"`
}

// List returns the caller's latest notifications, newest first.
func (s *Service) List(ctx context.Context) (*Inbox, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.notifications.List(ctx, userID, s.cfg.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}
	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.List count unread: %w", err)
	}
	return &Inbox{Items: items, Unread: unread}, nil
}

// MarkRead sets the read flag of one of the caller's notifications.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID, read bool) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	n, err := s.notifications.SetRead(ctx, userID, id, read)
	if err != nil {
		return nil, fmt.Errorf("notification.MarkRead: %w", err)
	}
	return n, nil
}

// MarkAllRead marks every unread notification of the caller as read.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.MarkAllRead: %w", err)
	}
	return n, nil
}

// Delete removes one of the caller's notifications.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.notifications.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("notification.Delete: %w", err)
	}
	return nil
}

// DeleteAll clears the caller's inbox.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	n, err := s.notifications.DeleteAll(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.DeleteAll: %w", err)
	}

	s.log.InfoContext(ctx, "notifications cleared",
		slog.String("user_id", userID.String()),
		slog.Int64("count", n),
	)
	return n, nil
}

// Cleanup removes read notifications older than the retention period.
func (s *Service) Cleanup(ctx context.Context) (int, error) {
	cutoff := s.now().UTC().Add(-s.cfg.Retention())

	removed, err := s.notifications.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("notification.Cleanup: %w", err)
	}
	if s.observer != nil {
		s.observer.ObserveNotificationsCleanup(removed)
	}

	s.log.InfoContext(ctx, "notification cleanup complete",
		slog.Int("removed", removed),
		slog.Time("cutoff", cutoff),
	)
	return removed, nil
}
