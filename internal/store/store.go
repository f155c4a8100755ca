// Package store holds the process-wide in-memory state: users keyed by
// email and the generated property catalog. Nothing survives a restart.
package store

import (
	"sync"
	"time"

	"github.com/rqapp/rq-mobile-api/internal/domain"
)

// SeedUserEmail is the account returned by the profile endpoint, which
// ignores any auth context in this mock.
const SeedUserEmail = "test@example.com"

// Store owns all mutable state. The only mutation after startup is user
// insertion on registration, guarded by mu so concurrent registrations with
// the same email cannot both slip past the existence check.
type Store struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	properties []domain.Property
}

// New builds a store over the generated catalog and seeds the two demo
// accounts the mobile app expects.
func New(properties []domain.Property) *Store {
	seedPhone := "+972501234567"
	seededAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	return &Store{
		users: map[string]domain.User{
			SeedUserEmail: {
				ID:                 "user-123",
				FirstName:          "טסט",
				LastName:           "משתמש",
				Email:              SeedUserEmail,
				Phone:              &seedPhone,
				SubscriptionTier:   domain.TierPremium,
				PreferredLocations: []string{"תל אביב", "רמת גן"},
				CreatedAt:          seededAt,
			},
			"demo@rq.app": {
				ID:                 "user-456",
				FirstName:          "דמו",
				LastName:           "המשתמש",
				Email:              "demo@rq.app",
				Phone:              nil,
				SubscriptionTier:   domain.TierFree,
				PreferredLocations: []string{},
				CreatedAt:          seededAt,
			},
		},
		properties: properties,
	}
}

// InsertUser adds u keyed by its email. Check and insert happen under one
// write lock, so a duplicate email always gets ErrEmailTaken.
func (s *Store) InsertUser(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.Email]; exists {
		return domain.ErrEmailTaken
	}
	s.users[u.Email] = u
	return nil
}

// UserByEmail returns a copy of the user registered under email.
func (s *Store) UserByEmail(email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

// Properties returns the catalog in generation order. Callers must not
// mutate the returned slice.
func (s *Store) Properties() []domain.Property {
	return s.properties
}

// PropertyByID scans the catalog for id. Linear scan is fine at 50 entries.
func (s *Store) PropertyByID(id string) (domain.Property, error) {
	for _, p := range s.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Property{}, domain.ErrPropertyNotFound
}

// PropertyCount reports the catalog size, used by the readiness check.
func (s *Store) PropertyCount() int {
	return len(s.properties)
}
