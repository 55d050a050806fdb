// Package entry implements the game catalog repository on the query layer.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

const table = "games"

// Repo provides game persistence.
type Repo struct {
	q *query.Client
}

// New creates a new game repository.
func New(q *query.Client) *Repo {
	return &Repo{q: q}
}

// List returns games newest first. limit <= 0 means no limit.
// A missing games table reads as an empty catalog.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.Entry, error) {
	b := r.q.From(table).Order("created_at", false)
	if limit > 0 {
		b = b.Limit(limit)
	}

	res := b.Execute(ctx)
	if err := res.Err(); err != nil {
		if res.Error.IsUndefinedTable() {
			return []domain.Entry{}, nil
		}
		return nil, fmt.Errorf("list games: %w", err)
	}
	return decodeAll(res.Data)
}

// GetByID returns a game by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	res := r.q.From(table).Eq("id", id).MaybeSingle(ctx)
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "game", id)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("game %s: %w", id, domain.ErrNotFound)
	}
	return decodeOne(res.Data)
}

// Create inserts a game and returns the stored row with generated columns.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	res := r.q.From(table).Insert(ctx, record(e))
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "game", e.ID)
	}
	return decodeOne(res.Data[0])
}

// Update replaces the editable columns of a game and bumps updated_at.
func (r *Repo) Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	patch := record(e)
	patch["updated_at"] = time.Now().UTC()

	res := r.q.From(table).Eq("id", e.ID).Update(ctx, patch)
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "game", e.ID)
	}
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("game %s: %w", e.ID, domain.ErrNotFound)
	}
	return decodeOne(res.Data[0])
}

// Delete removes a game. Screenshots, ratings and favorites cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.q.From(table).Eq("id", id).Delete(ctx)
	if err := res.Err(); err != nil {
		return postgres.MapError(err, "game", id)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("game %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of cataloged games.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	res := r.q.From(table).Count(ctx)
	if err := res.Err(); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return res.Count, nil
}

func record(e *domain.Entry) query.Record {
	platforms := e.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	genres := e.Genres
	if genres == nil {
		genres = []string{}
	}
	return query.Record{
		"title":          e.Title,
		"description_en": e.DescriptionEN,
		"description_ru": e.DescriptionRU,
		"cover_url":      e.CoverURL,
		"download_link":  e.DownloadLink,
		"platform":       e.Platform,
		"platforms":      platforms,
		"genres":         genres,
	}
}

func decodeOne(row query.Row) (*domain.Entry, error) {
	e, err := query.DecodeRow[domain.Entry](row)
	if err != nil {
		return nil, fmt.Errorf("decode game: %w", err)
	}
	e.NormalizePlatforms()
	return &e, nil
}

func decodeAll(rows []query.Row) ([]domain.Entry, error) {
	entries, err := query.DecodeRows[domain.Entry](rows)
	if err != nil {
		return nil, fmt.Errorf("decode games: %w", err)
	}
	for i := range entries {
		entries[i].NormalizePlatforms()
	}
	return entries, nil
}
