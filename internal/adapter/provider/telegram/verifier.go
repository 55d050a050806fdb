// Package telegram verifies Telegram WebApp init data and extracts the
// user identity it describes.
package telegram

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/gamecatalog-backend/internal/auth"
	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// webAppDataKey is the fixed HMAC key Telegram uses to derive the secret
// from the bot token.
const webAppDataKey = "WebAppData"

// Verification failures. All of them wrap domain.ErrUnauthorized.
var (
	ErrMissingHash = fmt.Errorf("init data has no hash: %w", domain.ErrUnauthorized)
	ErrBadHash     = fmt.Errorf("init data hash mismatch: %w", domain.ErrUnauthorized)
	ErrExpired     = fmt.Errorf("init data expired: %w", domain.ErrUnauthorized)
	ErrNoUser      = fmt.Errorf("init data has no user: %w", domain.ErrUnauthorized)
)

// Verifier checks init data signed for one bot.
type Verifier struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
	log    *slog.Logger
}

// NewVerifier creates a verifier for botToken. Init data older than maxAge
// is rejected; zero disables the age check.
func NewVerifier(botToken string, maxAge time.Duration, logger *slog.Logger) *Verifier {
	return &Verifier{
		secret: secretKey(botToken),
		maxAge: maxAge,
		now:    time.Now,
		log:    logger.With("adapter", "telegram"),
	}
}

// userPayload is the JSON object carried in the "user" field.
type userPayload struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
	PhotoURL     string `json:"photo_url"`
}

// Verify validates the signature and freshness of raw init data (the
// query string Telegram.WebApp.initData) and returns the user.
func (v *Verifier) Verify(ctx context.Context, initData string) (*auth.TelegramIdentity, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("parse init data: %w", domain.ErrUnauthorized)
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, ErrMissingHash
	}

	want := v.sign(checkString(values))
	got, err := hex.DecodeString(hash)
	if err != nil || !hmac.Equal(got, want) {
		v.log.WarnContext(ctx, "rejected init data with bad hash")
		return nil, ErrBadHash
	}

	if v.maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("auth_date: %w", domain.ErrUnauthorized)
		}
		if v.now().Sub(time.Unix(authDate, 0)) > v.maxAge {
			return nil, ErrExpired
		}
	}

	raw := values.Get("user")
	if raw == "" {
		return nil, ErrNoUser
	}
	var u userPayload
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", errors.Join(err, domain.ErrUnauthorized))
	}
	if u.ID == 0 {
		return nil, ErrNoUser
	}

	return &auth.TelegramIdentity{
		ID:           u.ID,
		Username:     nonEmpty(u.Username),
		FirstName:    nonEmpty(u.FirstName),
		LastName:     nonEmpty(u.LastName),
		PhotoURL:     nonEmpty(u.PhotoURL),
		LanguageCode: nonEmpty(u.LanguageCode),
	}, nil
}

// Sign stores in values the hash Telegram would compute for this bot and
// returns the encoded init data. Local tooling and end-to-end tests use it
// to log in without a real client.
func (v *Verifier) Sign(values url.Values) string {
	values.Del("hash")
	values.Set("hash", hex.EncodeToString(v.sign(checkString(values))))
	return values.Encode()
}

func (v *Verifier) sign(data string) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}

func secretKey(botToken string) []byte {
	mac := hmac.New(sha256.New, []byte(webAppDataKey))
	mac.Write([]byte(botToken))
	return mac.Sum(nil)
}

// checkString joins every field except hash as sorted "key=value" lines.
func checkString(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k != "hash" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + "=" + values.Get(k)
	}
	return strings.Join(lines, "\n")
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
