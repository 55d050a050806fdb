// Package screenshot implements the game screenshot repository.
package screenshot

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

const table = "screenshots"

// Repo provides screenshot persistence.
type Repo struct {
	q *query.Client
}

// New creates a new screenshot repository.
func New(q *query.Client) *Repo {
	return &Repo{q: q}
}

// ListByEntry returns a game's screenshots by ascending order_index.
func (r *Repo) ListByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.Screenshot, error) {
	res := r.q.From(table).Eq("game_id", entryID).Order("order_index", true).Execute(ctx)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("list screenshots for game %s: %w", entryID, err)
	}
	shots, err := query.DecodeRows[domain.Screenshot](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode screenshots: %w", err)
	}
	return shots, nil
}

// Create attaches screenshots to a game in one batch and returns them in
// input order.
func (r *Repo) Create(ctx context.Context, entryID uuid.UUID, shots []domain.Screenshot) ([]domain.Screenshot, error) {
	records := make([]query.Record, len(shots))
	for i, s := range shots {
		records[i] = query.Record{
			"game_id":     entryID,
			"image_url":   s.ImageURL,
			"order_index": s.OrderIndex,
		}
	}

	res := r.q.From(table).Insert(ctx, records...)
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "screenshot", entryID)
	}
	out, err := query.DecodeRows[domain.Screenshot](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode screenshots: %w", err)
	}
	return out, nil
}

// Delete removes one screenshot.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.q.From(table).Eq("id", id).Delete(ctx)
	if err := res.Err(); err != nil {
		return postgres.MapError(err, "screenshot", id)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("screenshot %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
