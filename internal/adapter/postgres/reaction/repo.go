// Package reaction implements the like/dislike repository for reviews.
package reaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

const table = "review_reactions"

const summarySQL = `
SELECT reaction_type, COUNT(*) AS count
FROM review_reactions
WHERE review_id = $1
GROUP BY reaction_type`

// Repo provides reaction persistence.
type Repo struct {
	q *query.Client
}

// New creates a new reaction repository.
func New(q *query.Client) *Repo {
	return &Repo{q: q}
}

// Set records the user's vote on a review, replacing any earlier vote.
func (r *Repo) Set(ctx context.Context, ratingID, accountID uuid.UUID, kind domain.ReactionKind) (*domain.Reaction, error) {
	res := r.q.From(table).Upsert(ctx, query.Record{
		"review_id":     ratingID,
		"user_id":       accountID,
		"reaction_type": string(kind),
	}, "review_id", "user_id")
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "review_reaction", ratingID)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("review_reaction %s: upsert returned no row", ratingID)
	}

	rc, err := query.DecodeRow[domain.Reaction](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode reaction: %w", err)
	}
	return &rc, nil
}

// Get returns the user's vote on a review.
func (r *Repo) Get(ctx context.Context, ratingID, accountID uuid.UUID) (*domain.Reaction, error) {
	res := r.q.From(table).Eq("review_id", ratingID).Eq("user_id", accountID).MaybeSingle(ctx)
	if err := res.Err(); err != nil {
		return nil, postgres.MapError(err, "review_reaction", ratingID)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("review_reaction %s: %w", ratingID, domain.ErrNotFound)
	}
	rc, err := query.DecodeRow[domain.Reaction](res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode reaction: %w", err)
	}
	return &rc, nil
}

// Remove withdraws the user's vote. Removing a missing vote is not an error.
func (r *Repo) Remove(ctx context.Context, ratingID, accountID uuid.UUID) error {
	res := r.q.From(table).Eq("review_id", ratingID).Eq("user_id", accountID).Delete(ctx)
	if err := res.Err(); err != nil {
		return postgres.MapError(err, "review_reaction", ratingID)
	}
	return nil
}

// Summary counts likes and dislikes on a review.
func (r *Repo) Summary(ctx context.Context, ratingID uuid.UUID) (domain.ReactionSummary, error) {
	var out domain.ReactionSummary

	res := r.q.Raw(ctx, summarySQL, ratingID)
	if err := res.Err(); err != nil {
		return out, fmt.Errorf("summarize reactions for review %s: %w", ratingID, err)
	}

	type bucket struct {
		Kind  domain.ReactionKind `db:"reaction_type"`
		Count int64               `db:"count"`
	}
	buckets, err := query.DecodeRows[bucket](res.Data)
	if err != nil {
		return out, fmt.Errorf("decode reaction summary: %w", err)
	}
	for _, b := range buckets {
		switch b.Kind {
		case domain.ReactionLike:
			out.Likes = b.Count
		case domain.ReactionDislike:
			out.Dislikes = b.Count
		}
	}
	return out, nil
}
