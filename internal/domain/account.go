package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a user identified through Telegram login.
type Account struct {
	ID         uuid.UUID `db:"id"          json:"id"`
	TelegramID int64     `db:"telegram_id" json:"telegram_id"`
	Username   *string   `db:"username"    json:"username"`
	FirstName  *string   `db:"first_name"  json:"first_name"`
	LastName   *string   `db:"last_name"   json:"last_name"`
	AvatarURL  *string   `db:"avatar_url"  json:"avatar_url"`
	Language   string    `db:"language"    json:"language"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
}

// DisplayName returns the best human label for the account.
func (a *Account) DisplayName() string {
	switch {
	case a.FirstName != nil && *a.FirstName != "":
		return *a.FirstName
	case a.Username != nil && *a.Username != "":
		return *a.Username
	default:
		return "User"
	}
}

// AccountProfile is the set of display fields refreshed on every login.
type AccountProfile struct {
	Username  *string
	FirstName *string
	LastName  *string
	AvatarURL *string
}

// Author is the account projection joined onto ratings, replies and
// suggestions.
type Author struct {
	TelegramID *int64  `db:"telegram_id" json:"telegram_id"`
	Username   *string `db:"username"    json:"username"`
	FirstName  *string `db:"first_name"  json:"first_name"`
	LastName   *string `db:"last_name"   json:"last_name"`
	AvatarURL  *string `db:"avatar_url"  json:"avatar_url"`
}

// AccountStats aggregates an account's activity.
type AccountStats struct {
	AverageRating  float64 `json:"average_rating"`
	TotalRatings   int64   `json:"total_reviews"`
	TotalFavorites int64   `json:"total_favorites"`
}
