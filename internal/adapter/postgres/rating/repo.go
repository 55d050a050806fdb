// Package rating implements the review repository on the query layer.
package rating

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

const table = "reviews"

// Repo provides review persistence.
type Repo struct {
	q *query.Client
}

// New creates a new review repository.
func New(q *query.Client) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Raw SQL for JOIN and aggregate reads
// ---------------------------------------------------------------------------

const listByEntrySQL = `
SELECT r.*, u.telegram_id, u.username, u.first_name, u.last_name, u.avatar_url
FROM reviews r
JOIN users u ON r.user_id = u.id
WHERE r.game_id = $1
ORDER BY r.created_at DESC`

const summaryByAccountSQL = `
SELECT COALESCE(AVG(rating), 0)::float8 AS average, COUNT(*) AS total
FROM reviews
WHERE user_id = $1`

const statsByEntriesSQL = `
SELECT game_id, COALESCE(AVG(rating), 0)::float8 AS average, COUNT(*) AS total
FROM reviews
WHERE game_id = ANY($1)
GROUP BY game_id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntry returns the reviews of a game with their authors, newest first.
func (r *Repo) ListByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.RatingView, error) {
	res := r.q.Raw(ctx, listByEntrySQL, entryID)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("list reviews for game %s: %w", entryID, err)
	}
	views, err := query.DecodeRows[domain.RatingView](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return views, nil
}

// ListByAccount returns the reviews written by one user, newest first.
func (r *Repo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.Rating, error) {
	res := r.q.From(table).Eq("user_id", accountID).Order("created_at", false).Execute(ctx)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("list reviews for user %s: %w", accountID, err)
	}
	ratings, err := query.DecodeRows[domain.Rating](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return ratings, nil
}

// GetByID returns a review by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	res := r.q.From(table).Eq("id", id).MaybeSingle(ctx)
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "review", id)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("review %s: %w", id, domain.ErrNotFound)
	}
	return decode(res.Data)
}

// FindByAccountEntry returns the review a user wrote for a game.
func (r *Repo) FindByAccountEntry(ctx context.Context, accountID, entryID uuid.UUID) (*domain.Rating, error) {
	res := r.q.From(table).Eq("user_id", accountID).Eq("game_id", entryID).MaybeSingle(ctx)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("find review of user %s for game %s: %w", accountID, entryID, err)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("review of user %s for game %s: %w", accountID, entryID, domain.ErrNotFound)
	}
	return decode(res.Data)
}

// SummaryByAccount returns the average score and number of reviews
// written by a user. A user without reviews averages 0.
func (r *Repo) SummaryByAccount(ctx context.Context, accountID uuid.UUID) (float64, int64, error) {
	res := r.q.Raw(ctx, summaryByAccountSQL, accountID)
	if err := res.Err(); err != nil {
		return 0, 0, fmt.Errorf("summarize reviews for user %s: %w", accountID, err)
	}
	if len(res.Data) == 0 {
		return 0, 0, nil
	}

	s, err := query.DecodeRow[summary](res.Data[0])
	if err != nil {
		return 0, 0, fmt.Errorf("decode review summary: %w", err)
	}
	return s.Average, s.Total, nil
}

// StatsByEntries returns the average score and review count per game.
// Games without reviews are absent from the map.
func (r *Repo) StatsByEntries(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
	out := make(map[uuid.UUID]domain.RatingStats, len(entryIDs))
	if len(entryIDs) == 0 {
		return out, nil
	}

	res := r.q.Raw(ctx, statsByEntriesSQL, entryIDs)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("summarize reviews for %d games: %w", len(entryIDs), err)
	}
	rows, err := query.DecodeRows[entrySummary](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode game review summary: %w", err)
	}
	for _, s := range rows {
		out[s.EntryID] = domain.RatingStats{Average: s.Average, Count: s.Total}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a review. An unknown user or game yields domain.ErrNotFound,
// a score outside 1..5 domain.ErrValidation.
func (r *Repo) Create(ctx context.Context, rt *domain.Rating) (*domain.Rating, error) {
	res := r.q.From(table).Insert(ctx, query.Record{
		"user_id": rt.AccountID,
		"game_id": rt.EntryID,
		"rating":  rt.Score,
		"comment": rt.Comment,
	})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "review", rt.ID)
	}
	return decode(res.Data[0])
}

// Update rewrites score and comment.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, score int, comment string) (*domain.Rating, error) {
	res := r.q.From(table).Eq("id", id).Update(ctx, query.Record{
		"rating":  score,
		"comment": comment,
	})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "review", id)
	}
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("review %s: %w", id, domain.ErrNotFound)
	}
	return decode(res.Data[0])
}

// Delete removes a review together with its replies and reactions.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.q.From(table).Eq("id", id).Delete(ctx)
	if err := res.Err(); err != nil {
		return postgres.MapError(err, "review", id)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type summary struct {
	Average float64 `db:"average"`
	Total   int64   `db:"total"`
}

type entrySummary struct {
	EntryID uuid.UUID `db:"game_id"`
	Average float64   `db:"average"`
	Total   int64     `db:"total"`
}

func decode(row query.Row) (*domain.Rating, error) {
	rt, err := query.DecodeRow[domain.Rating](row)
	if err != nil {
		return nil, fmt.Errorf("decode review: %w", err)
	}
	return &rt, nil
}
