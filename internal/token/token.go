// Package token issues the credential pair returned by the auth endpoints.
// The default mock issuer produces opaque strings that nothing ever
// verifies; a real implementation only has to satisfy Issuer.
package token

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rqapp/rq-mobile-api/internal/domain"
)

const expiresInSeconds = 3600

var ErrTokenInvalid = errors.New("token is invalid or expired")

type Issuer interface {
	Issue(userID string) (domain.Tokens, error)
	// Verify extracts the user ID carried by raw. The mock issuer treats
	// every token as valid and returns an empty ID.
	Verify(raw string) (string, error)
}

// MockIssuer embeds the user ID and a random suffix in opaque strings.
type MockIssuer struct{}

func NewMockIssuer() *MockIssuer { return &MockIssuer{} }

func (*MockIssuer) Issue(userID string) (domain.Tokens, error) {
	return domain.Tokens{
		AccessToken:  fmt.Sprintf("access-token-%s-%s", userID, randomSuffix()),
		RefreshToken: fmt.Sprintf("refresh-token-%s-%s", userID, randomSuffix()),
		ExpiresIn:    expiresInSeconds,
	}, nil
}

// Verify is a no-op: the mock backend never checks inbound tokens.
func (*MockIssuer) Verify(string) (string, error) { return "", nil }

func randomSuffix() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:16]
}

// JWTIssuer signs HS256 tokens carrying the user ID. Selected with
// TOKEN_MODE=jwt; the wire shape of the response is unchanged.
type JWTIssuer struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTIssuer(key []byte) *JWTIssuer {
	return &JWTIssuer{
		key:        key,
		accessTTL:  time.Duration(expiresInSeconds) * time.Second,
		refreshTTL: 30 * 24 * time.Hour,
	}
}

func (i *JWTIssuer) Issue(userID string) (domain.Tokens, error) {
	now := time.Now()

	access, err := i.sign(userID, now, now.Add(i.accessTTL))
	if err != nil {
		return domain.Tokens{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := i.sign(userID, now, now.Add(i.refreshTTL))
	if err != nil {
		return domain.Tokens{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return domain.Tokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresInSeconds,
	}, nil
}

func (i *JWTIssuer) sign(userID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": issuedAt.Unix(),
		"exp": expiresAt.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
}

func (i *JWTIssuer) Verify(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.key, nil
	})
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", ErrTokenInvalid
	}
	return userID, nil
}
