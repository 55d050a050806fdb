package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a stored message for an account.
type Notification struct {
	ID         uuid.UUID        `db:"id"         json:"id"`
	AccountID  uuid.UUID        `db:"user_id"    json:"user_id"`
	Type       NotificationType `db:"type"       json:"type"`
	Title      string           `db:"title"      json:"title"`
	Message    string           `db:"message"    json:"message"`
	EntryTitle *string          `db:"game_title" json:"game_title"`
	FromUser   *string          `db:"from_user"  json:"from_user"`
	Read       bool             `db:"read"       json:"read"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
}

// Suggestion is an account's proposal for a new entry.
type Suggestion struct {
	ID          uuid.UUID        `db:"id"          json:"id"`
	AccountID   uuid.UUID        `db:"user_id"     json:"user_id"`
	Title       string           `db:"game_title"  json:"game_title"`
	Description string           `db:"description" json:"description"`
	Status      SuggestionStatus `db:"status"      json:"status"`
	CreatedAt   time.Time        `db:"created_at"  json:"created_at"`
	ReviewedAt  *time.Time       `db:"reviewed_at" json:"reviewed_at"`
	ReviewedBy  *uuid.UUID       `db:"reviewed_by" json:"reviewed_by"`
}

// SuggestionView is a suggestion joined with its author.
type SuggestionView struct {
	Suggestion
	Author
}
