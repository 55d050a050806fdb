package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/gamecatalog-backend/internal/domain"
)

// JWTManager issues and validates the access tokens handed out after a
// Telegram login. There are no refresh tokens: clients log in again with
// fresh init data when the token expires.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims carries the account id as subject plus role and Telegram id.
type accessClaims struct {
	jwt.RegisteredClaims
	Role       domain.Role `json:"role,omitempty"`
	TelegramID int64       `json:"tg,omitempty"`
}

// GenerateAccessToken signs an HS256 token for an account.
func (m *JWTManager) GenerateAccessToken(accountID uuid.UUID, telegramID int64, role domain.Role) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:       role,
		TelegramID: telegramID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses a token and returns the account id and role.
// Tokens without a role claim are treated as plain users.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, domain.Role, error) {
	if tokenString == "" {
		return uuid.Nil, "", errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return uuid.Nil, "", errors.New("invalid token claims")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject UUID: %w", err)
	}

	role := claims.Role
	if role == "" {
		role = domain.RoleUser
	}
	return accountID, role, nil
}
