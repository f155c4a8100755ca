package domain

import (
	"errors"
	"time"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

type User struct {
	ID                 string    `json:"id"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Email              string    `json:"email"`
	Phone              *string   `json:"phone"`
	SubscriptionTier   Tier      `json:"subscriptionTier"`
	PreferredLocations []string  `json:"preferredLocations"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Tokens is the credential pair handed to the app on register/login/refresh.
// The mock issuer embeds the user ID in opaque strings; nothing server-side
// ever verifies or revokes them.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

type Subscription struct {
	Tier         Tier      `json:"tier"`
	ExpiresAt    time.Time `json:"expiresAt"`
	AutoRenewing bool      `json:"autoRenewing"`
}

type ReceiptVerification struct {
	Success      bool         `json:"success"`
	Subscription Subscription `json:"subscription"`
	Message      string       `json:"message"`
}
