// Package notification implements the notification inbox repository.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

const table = "notifications"

// deleteReadBeforeSQL is raw because the chain only expresses equality.
const deleteReadBeforeSQL = `
DELETE FROM notifications
WHERE read AND created_at < $1
RETURNING id`

// Repo provides notification persistence.
type Repo struct {
	q *query.Client
}

// New creates a new notification repository.
func New(q *query.Client) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns a user's most recent notifications, newest first.
func (r *Repo) List(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Notification, error) {
	res := r.q.From(table).
		Eq("user_id", accountID).
		Order("created_at", false).
		Limit(limit).
		Execute(ctx)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("list notifications for user %s: %w", accountID, err)
	}
	ns, err := query.DecodeRows[domain.Notification](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return ns, nil
}

// CountUnread returns how many notifications the user has not read.
func (r *Repo) CountUnread(ctx context.Context, accountID uuid.UUID) (int64, error) {
	res := r.q.From(table).Eq("user_id", accountID).Eq("read", false).Count(ctx)
	if err := res.Err(); err != nil {
		return 0, fmt.Errorf("count unread notifications for user %s: %w", accountID, err)
	}
	return res.Count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create stores a notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	res := r.q.From(table).Insert(ctx, query.Record{
		"user_id":    n.AccountID,
		"type":       string(n.Type),
		"title":      n.Title,
		"message":    n.Message,
		"game_title": n.EntryTitle,
		"from_user":  n.FromUser,
	})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "notification", n.AccountID)
	}
	out, err := query.DecodeRow[domain.Notification](res.Data[0])
	if err != nil {
		return nil, fmt.Errorf("decode notification: %w", err)
	}
	return &out, nil
}

// SetRead flags one of the user's notifications as read or unread.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) SetRead(ctx context.Context, accountID, id uuid.UUID, read bool) (*domain.Notification, error) {
	res := r.q.From(table).Eq("id", id).Eq("user_id", accountID).Update(ctx, query.Record{"read": read})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	out, err := query.DecodeRow[domain.Notification](res.Data[0])
	if err != nil {
		return nil, fmt.Errorf("decode notification: %w", err)
	}
	return &out, nil
}

// MarkAllRead flags every unread notification of the user as read and
// returns how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, accountID uuid.UUID) (int, error) {
	res := r.q.From(table).Eq("user_id", accountID).Eq("read", false).Update(ctx, query.Record{"read": true})
	if err := res.Err(); err != nil {
		return 0, fmt.Errorf("mark notifications read for user %s: %w", accountID, err)
	}
	return len(res.Data), nil
}

// Delete removes one of the user's notifications.
func (r *Repo) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	res := r.q.From(table).Eq("id", id).Eq("user_id", accountID).Delete(ctx)
	if err := res.Err(); err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every notification of the user. Idempotent: calling on
// an empty inbox is not an error. Returns the number of deleted rows.
func (r *Repo) DeleteAll(ctx context.Context, accountID uuid.UUID) (int64, error) {
	res := r.q.From(table).Eq("user_id", accountID).Delete(ctx)
	if err := res.Err(); err != nil {
		return 0, fmt.Errorf("delete all notifications for user %s: %w", accountID, err)
	}
	return res.RowsAffected, nil
}

// DeleteReadBefore purges read notifications created before cutoff and
// returns how many were removed.
func (r *Repo) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int, error) {
	res := r.q.Raw(ctx, deleteReadBeforeSQL, cutoff)
	if err := res.Err(); err != nil {
		return 0, fmt.Errorf("purge read notifications: %w", err)
	}
	return len(res.Data), nil
}
