package usecase

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rqapp/rq-mobile-api/internal/domain"
	"github.com/rqapp/rq-mobile-api/internal/store"
	"github.com/rqapp/rq-mobile-api/internal/token"
)

// refreshUserID is the hardcoded identity every refresh resolves to. Real
// refresh-token verification would derive the user from the token instead.
const refreshUserID = "user-123"

// validPasswords are the only two passwords login accepts, for any
// registered email. There is no password storage in this mock.
var validPasswords = map[string]struct{}{
	"password123": {},
	"demo123":     {},
}

type AuthUsecase struct {
	store  *store.Store
	tokens token.Issuer
}

func NewAuthUsecase(st *store.Store, tokens token.Issuer) *AuthUsecase {
	return &AuthUsecase{store: st, tokens: tokens}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     *string
}

// Register creates a free-tier user keyed by the submitted email and issues
// a token pair. The password is accepted but never stored.
func (u *AuthUsecase) Register(in RegisterInput) (domain.User, domain.Tokens, error) {
	user := domain.User{
		ID:                 newUserID(),
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Email:              in.Email,
		Phone:              in.Phone,
		SubscriptionTier:   domain.TierFree,
		PreferredLocations: []string{},
		CreatedAt:          time.Now().UTC(),
	}

	if err := u.store.InsertUser(user); err != nil {
		return domain.User{}, domain.Tokens{}, err
	}

	tokens, err := u.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, domain.Tokens{}, fmt.Errorf("issue tokens: %w", err)
	}
	return user, tokens, nil
}

// Login succeeds only for a registered email combined with one of the two
// magic passwords. Both failure modes collapse into ErrInvalidCredentials.
func (u *AuthUsecase) Login(email, password string) (domain.User, domain.Tokens, error) {
	user, err := u.store.UserByEmail(email)
	if err != nil {
		return domain.User{}, domain.Tokens{}, domain.ErrInvalidCredentials
	}
	if _, ok := validPasswords[password]; !ok {
		return domain.User{}, domain.Tokens{}, domain.ErrInvalidCredentials
	}

	tokens, err := u.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, domain.Tokens{}, fmt.Errorf("issue tokens: %w", err)
	}
	return user, tokens, nil
}

// Refresh ignores the submitted refresh token entirely and issues a fresh
// pair for the hardcoded user.
func (u *AuthUsecase) Refresh(_ string) (domain.Tokens, error) {
	tokens, err := u.tokens.Issue(refreshUserID)
	if err != nil {
		return domain.Tokens{}, fmt.Errorf("issue tokens: %w", err)
	}
	return tokens, nil
}

func newUserID() string {
	id := uuid.New()
	return "user-" + hex.EncodeToString(id[:])[:8]
}
