package usecase

import (
	"time"

	"github.com/rqapp/rq-mobile-api/internal/domain"
	"github.com/rqapp/rq-mobile-api/internal/store"
)

// subscriptionWindow is how far out the canned premium subscription expires.
const subscriptionWindow = 30 * 24 * time.Hour

type UserUsecase struct {
	store *store.Store
}

func NewUserUsecase(st *store.Store) *UserUsecase {
	return &UserUsecase{store: st}
}

// Profile returns the fixed seed user, ignoring any auth context.
func (u *UserUsecase) Profile() (domain.User, error) {
	return u.store.UserByEmail(store.SeedUserEmail)
}

// Subscription always reports an active premium subscription 30 days out.
func (u *UserUsecase) Subscription() domain.Subscription {
	return domain.Subscription{
		Tier:         domain.TierPremium,
		ExpiresAt:    time.Now().UTC().Add(subscriptionWindow),
		AutoRenewing: true,
	}
}
