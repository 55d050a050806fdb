// Package favorite implements the user favorites repository.
package favorite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

const table = "favorites"

const listEntriesSQL = `
SELECT g.*
FROM favorites f
JOIN games g ON f.game_id = g.id
WHERE f.user_id = $1
ORDER BY f.created_at DESC`

// Repo provides favorite persistence.
type Repo struct {
	q *query.Client
}

// New creates a new favorites repository.
func New(q *query.Client) *Repo {
	return &Repo{q: q}
}

// ListEntries returns the games a user marked as favorite, most recent first.
func (r *Repo) ListEntries(ctx context.Context, accountID uuid.UUID) ([]domain.Entry, error) {
	res := r.q.Raw(ctx, listEntriesSQL, accountID)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("list favorites for user %s: %w", accountID, err)
	}
	entries, err := query.DecodeRows[domain.Entry](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode favorite games: %w", err)
	}
	for i := range entries {
		entries[i].NormalizePlatforms()
	}
	return entries, nil
}

// Add marks a game as favorite. Adding twice yields domain.ErrAlreadyExists.
func (r *Repo) Add(ctx context.Context, accountID, entryID uuid.UUID) (*domain.Favorite, error) {
	res := r.q.From(table).Insert(ctx, query.Record{
		"user_id": accountID,
		"game_id": entryID,
	})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "favorite", entryID)
	}
	f, err := query.DecodeRow[domain.Favorite](res.Data[0])
	if err != nil {
		return nil, fmt.Errorf("decode favorite: %w", err)
	}
	return &f, nil
}

// Remove unmarks a game. Returns domain.ErrNotFound if it was not a favorite.
func (r *Repo) Remove(ctx context.Context, accountID, entryID uuid.UUID) error {
	res := r.q.From(table).Eq("user_id", accountID).Eq("game_id", entryID).Delete(ctx)
	if err := res.Err(); err != nil {
		return postgres.MapError(err, "favorite", entryID)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("favorite %s: %w", entryID, domain.ErrNotFound)
	}
	return nil
}

// Exists reports whether the game is among the user's favorites.
func (r *Repo) Exists(ctx context.Context, accountID, entryID uuid.UUID) (bool, error) {
	res := r.q.From(table).Eq("user_id", accountID).Eq("game_id", entryID).Count(ctx)
	if err := res.Err(); err != nil {
		return false, fmt.Errorf("check favorite %s: %w", entryID, err)
	}
	return res.Count > 0, nil
}

// CountByAccount returns how many favorites a user has.
func (r *Repo) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	res := r.q.From(table).Eq("user_id", accountID).Count(ctx)
	if err := res.Err(); err != nil {
		return 0, fmt.Errorf("count favorites for user %s: %w", accountID, err)
	}
	return res.Count, nil
}
