package testhelper

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates a user with a random telegram id and a unique username.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()

	suffix := uniqueSuffix()
	username := "user_" + suffix
	firstName := "Test " + suffix

	var acc domain.Account
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (telegram_id, username, first_name)
		 VALUES ($1, $2, $3)
		 RETURNING id, telegram_id, username, first_name, last_name, avatar_url, language, created_at`,
		rand.Int64N(1<<40)+1, username, firstName,
	).Scan(&acc.ID, &acc.TelegramID, &acc.Username, &acc.FirstName, &acc.LastName, &acc.AvatarURL, &acc.Language, &acc.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}
	return acc
}

// SeedEntry creates a game with the given title on the "Windows" platform.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, title string) domain.Entry {
	t.Helper()

	var e domain.Entry
	err := pool.QueryRow(context.Background(),
		`INSERT INTO games (title, platform, platforms, genres)
		 VALUES ($1, 'Windows', ARRAY['Windows'], ARRAY['Action'])
		 RETURNING id, title, platform, platforms, genres, created_at, updated_at`,
		title,
	).Scan(&e.ID, &e.Title, &e.Platform, &e.Platforms, &e.Genres, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}
	return e
}

// SeedRating creates a rating by accountID on entryID.
func SeedRating(t *testing.T, pool *pgxpool.Pool, accountID, entryID uuid.UUID, score int) domain.Rating {
	t.Helper()

	r := domain.Rating{AccountID: accountID, EntryID: entryID, Score: score, Comment: "seeded " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO reviews (user_id, game_id, rating, comment)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		accountID, entryID, score, r.Comment,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRating: %v", err)
	}
	return r
}

// SeedNotification creates an unread notification for accountID.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, accountID uuid.UUID) domain.Notification {
	t.Helper()

	n := domain.Notification{
		AccountID: accountID,
		Type:      domain.NotificationReviewSubmitted,
		Title:     "Seeded",
		Message:   "seeded " + uniqueSuffix(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO notifications (user_id, type, title, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, read, created_at`,
		accountID, string(n.Type), n.Title, n.Message,
	).Scan(&n.ID, &n.Read, &n.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedNotification: %v", err)
	}
	return n
}
