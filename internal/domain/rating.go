package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds.
const (
	MinScore = 1
	MaxScore = 5
)

// Rating is a scored, commented evaluation of an entry.
type Rating struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	AccountID uuid.UUID `db:"user_id"    json:"user_id"`
	EntryID   uuid.UUID `db:"game_id"    json:"game_id"`
	Score     int       `db:"rating"     json:"rating"`
	Comment   string    `db:"comment"    json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// RatingStats summarizes the scores an entry received. An entry without
// ratings averages 0.
type RatingStats struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// RatingView is a rating joined with its author.
type RatingView struct {
	Rating
	Author
}

// Reply is a comment on a rating.
type Reply struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	RatingID  uuid.UUID `db:"review_id"  json:"review_id"`
	AccountID uuid.UUID `db:"user_id"    json:"user_id"`
	Comment   string    `db:"comment"    json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReplyView is a reply joined with its author.
type ReplyView struct {
	Reply
	Author
}

// Reaction is one account's vote on a rating.
type Reaction struct {
	ID        uuid.UUID    `db:"id"            json:"id"`
	RatingID  uuid.UUID    `db:"review_id"     json:"review_id"`
	AccountID uuid.UUID    `db:"user_id"       json:"user_id"`
	Kind      ReactionKind `db:"reaction_type" json:"reaction_type"`
	CreatedAt time.Time    `db:"created_at"    json:"created_at"`
}

// ReactionSummary counts votes on a rating.
type ReactionSummary struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// Favorite links an account to an entry.
type Favorite struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	AccountID uuid.UUID `db:"user_id"    json:"user_id"`
	EntryID   uuid.UUID `db:"game_id"    json:"game_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
