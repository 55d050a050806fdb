// Package reply implements the review reply repository.
package reply

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

const table = "review_replies"

const listByRatingSQL = `
SELECT rr.*, u.telegram_id, u.username, u.first_name, u.last_name, u.avatar_url
FROM review_replies rr
JOIN users u ON rr.user_id = u.id
WHERE rr.review_id = $1
ORDER BY rr.created_at ASC`

// Repo provides reply persistence.
type Repo struct {
	q *query.Client
}

// New creates a new reply repository.
func New(q *query.Client) *Repo {
	return &Repo{q: q}
}

// ListByRating returns the replies to a review in posting order.
func (r *Repo) ListByRating(ctx context.Context, ratingID uuid.UUID) ([]domain.ReplyView, error) {
	res := r.q.Raw(ctx, listByRatingSQL, ratingID)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("list replies for review %s: %w", ratingID, err)
	}
	views, err := query.DecodeRows[domain.ReplyView](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode replies: %w", err)
	}
	return views, nil
}

// GetByID returns a reply by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reply, error) {
	res := r.q.From(table).Eq("id", id).MaybeSingle(ctx)
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "review_reply", id)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("review_reply %s: %w", id, domain.ErrNotFound)
	}
	return decode(res.Data)
}

// Create inserts a reply.
func (r *Repo) Create(ctx context.Context, rp *domain.Reply) (*domain.Reply, error) {
	res := r.q.From(table).Insert(ctx, query.Record{
		"review_id": rp.RatingID,
		"user_id":   rp.AccountID,
		"comment":   rp.Comment,
	})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "review_reply", rp.ID)
	}
	return decode(res.Data[0])
}

// Delete removes a reply.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.q.From(table).Eq("id", id).Delete(ctx)
	if err := res.Err(); err != nil {
		return postgres.MapError(err, "review_reply", id)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review_reply %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func decode(row query.Row) (*domain.Reply, error) {
	rp, err := query.DecodeRow[domain.Reply](row)
	if err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}
	return &rp, nil
}
