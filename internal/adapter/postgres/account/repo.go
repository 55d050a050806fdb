// Package account implements the user repository on the query layer.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

const table = "users"

// Repo provides user persistence.
type Repo struct {
	q *query.Client
}

// New creates a new user repository.
func New(q *query.Client) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	res := r.q.From(table).Eq("id", id).MaybeSingle(ctx)
	return r.one(res, id)
}

// GetByTelegramID returns the user bound to a Telegram account.
func (r *Repo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Account, error) {
	res := r.q.From(table).Eq("telegram_id", telegramID).MaybeSingle(ctx)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("user telegram:%d: %w", telegramID, err)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("user telegram:%d: %w", telegramID, domain.ErrNotFound)
	}
	return decode(res.Data)
}

// List returns every user, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Account, error) {
	res := r.q.From(table).Order("created_at", false).Execute(ctx)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	accounts, err := query.DecodeRows[domain.Account](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return accounts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a user. A duplicate telegram_id yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	lang := a.Language
	if lang == "" {
		lang = "en"
	}

	res := r.q.From(table).Insert(ctx, query.Record{
		"telegram_id": a.TelegramID,
		"username":    a.Username,
		"first_name":  a.FirstName,
		"last_name":   a.LastName,
		"avatar_url":  a.AvatarURL,
		"language":    lang,
	})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "user", a.ID)
	}
	return decode(res.Data[0])
}

// UpdateProfile rewrites the display fields of a user. Language is kept.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, p domain.AccountProfile) (*domain.Account, error) {
	res := r.q.From(table).Eq("id", id).Update(ctx, query.Record{
		"username":   p.Username,
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"avatar_url": p.AvatarURL,
	})
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return decode(res.Data[0])
}

func (r *Repo) one(res query.SingleResult, id uuid.UUID) (*domain.Account, error) {
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return decode(res.Data)
}

func decode(row query.Row) (*domain.Account, error) {
	a, err := query.DecodeRow[domain.Account](row)
	if err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &a, nil
}
