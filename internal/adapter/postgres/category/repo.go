// Package category implements the genre repository.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

const table = "genres"

// Repo provides genre persistence.
type Repo struct {
	q *query.Client
}

// New creates a new genre repository.
func New(q *query.Client) *Repo {
	return &Repo{q: q}
}

// List returns all genres ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	res := r.q.From(table).Order("name", true).Execute(ctx)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	cats, err := query.DecodeRows[domain.Category](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}
	return cats, nil
}

// Create inserts a genre. A duplicate name yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Category, error) {
	res := r.q.From(table).Insert(ctx, query.Record{"name": name})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "genre", uuid.Nil)
	}
	c, err := query.DecodeRow[domain.Category](res.Data[0])
	if err != nil {
		return nil, fmt.Errorf("decode genre: %w", err)
	}
	return &c, nil
}

// Update renames a genre. A taken name yields domain.ErrAlreadyExists.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error) {
	res := r.q.From(table).Eq("id", id).Update(ctx, query.Record{"name": name})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "genre", id)
	}
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("genre %s: %w", id, domain.ErrNotFound)
	}
	c, err := query.DecodeRow[domain.Category](res.Data[0])
	if err != nil {
		return nil, fmt.Errorf("decode genre: %w", err)
	}
	return &c, nil
}

// Delete removes a genre.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.q.From(table).Eq("id", id).Delete(ctx)
	if err := res.Err(); err != nil {
		return postgres.MapError(err, "genre", id)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("genre %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
