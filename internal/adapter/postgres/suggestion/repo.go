// Package suggestion implements the game suggestion repository.
package suggestion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

const table = "game_suggestions"

const listSQL = `
SELECT gs.*, u.telegram_id, u.username, u.first_name, u.last_name, u.avatar_url
FROM game_suggestions gs
JOIN users u ON gs.user_id = u.id
ORDER BY gs.created_at DESC`

const listByAccountSQL = `
SELECT gs.*, u.telegram_id, u.username, u.first_name, u.last_name, u.avatar_url
FROM game_suggestions gs
JOIN users u ON gs.user_id = u.id
WHERE gs.user_id = $1
ORDER BY gs.created_at DESC`

// Repo provides suggestion persistence.
type Repo struct {
	q *query.Client
}

// New creates a new suggestion repository.
func New(q *query.Client) *Repo {
	return &Repo{q: q}
}

// List returns every suggestion with its author, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.SuggestionView, error) {
	return decodeViews(r.q.Raw(ctx, listSQL))
}

// ListByAccount returns one user's suggestions, newest first.
func (r *Repo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.SuggestionView, error) {
	return decodeViews(r.q.Raw(ctx, listByAccountSQL, accountID))
}

func decodeViews(res query.Result) ([]domain.SuggestionView, error) {
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("list game_suggestions: %w", err)
	}
	views, err := query.DecodeRows[domain.SuggestionView](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode game_suggestions: %w", err)
	}
	return views, nil
}

// GetByID returns a suggestion by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error) {
	res := r.q.From(table).Eq("id", id).MaybeSingle(ctx)
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "game_suggestion", id)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("game_suggestion %s: %w", id, domain.ErrNotFound)
	}
	return decode(res.Data)
}

// LatestByAccount returns the newest suggestion of a user, or nil when the
// user never suggested anything.
func (r *Repo) LatestByAccount(ctx context.Context, accountID uuid.UUID) (*domain.Suggestion, error) {
	res := r.q.From(table).
		Eq("user_id", accountID).
		Order("created_at", false).
		Limit(1).
		MaybeSingle(ctx)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("latest game_suggestion of user %s: %w", accountID, err)
	}
	if res.Data == nil {
		return nil, nil
	}
	return decode(res.Data)
}

// Create stores a pending suggestion.
func (r *Repo) Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error) {
	res := r.q.From(table).Insert(ctx, query.Record{
		"user_id":     s.AccountID,
		"game_title":  s.Title,
		"description": s.Description,
	})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "game_suggestion", s.ID)
	}
	return decode(res.Data[0])
}

// Review moves a pending suggestion to status. The update is guarded on
// status = 'pending', so a suggestion is reviewed at most once: a second
// review yields domain.ErrConflict, an unknown id domain.ErrNotFound.
func (r *Repo) Review(ctx context.Context, id uuid.UUID, status domain.SuggestionStatus, reviewerID uuid.UUID) (*domain.Suggestion, error) {
	res := r.q.From(table).
		Eq("id", id).
		Eq("status", string(domain.SuggestionPending)).
		Update(ctx, query.Record{
			"status":      string(status),
			"reviewed_at": time.Now().UTC(),
			"reviewed_by": reviewerID,
		})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "game_suggestion", id)
	}
	if len(res.Data) > 0 {
		return decode(res.Data[0])
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("game_suggestion %s already reviewed: %w", id, domain.ErrConflict)
}

func decode(row query.Row) (*domain.Suggestion, error) {
	s, err := query.DecodeRow[domain.Suggestion](row)
	if err != nil {
		return nil, fmt.Errorf("decode game_suggestion: %w", err)
	}
	return &s, nil
}
