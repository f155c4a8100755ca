package usecase

import (
	"time"

	"github.com/rqapp/rq-mobile-api/internal/domain"
	"github.com/rqapp/rq-mobile-api/internal/random"
	"github.com/rqapp/rq-mobile-api/internal/store"
)

// savedListSize is how many entries the list endpoint fabricates from the
// front of the catalog.
const savedListSize = 5

var changeNotes = []*string{
	nil,
	ptr("המחיר ירד ב-2%"),
	ptr("סטטוס עודכן"),
}

// SavedUsecase synthesizes saved-property views. There is no saved-set
// state: list and save fabricate entries independently on every call.
type SavedUsecase struct {
	store *store.Store
	rng   *random.Source
}

func NewSavedUsecase(st *store.Store, rng *random.Source) *SavedUsecase {
	return &SavedUsecase{store: st, rng: rng}
}

// List returns fabricated bookmarks over the first properties of the
// catalog. daysSaved is drawn independently of savedAt, as upstream does.
func (u *SavedUsecase) List() []domain.SavedProperty {
	props := u.store.Properties()
	if len(props) > savedListSize {
		props = props[:savedListSize]
	}

	now := time.Now().UTC()
	saved := make([]domain.SavedProperty, 0, len(props))
	for _, p := range props {
		saved = append(saved, domain.SavedProperty{
			ID:       "saved-" + p.ID,
			Property: p,
			Meta: domain.SavedMeta{
				SavedAt:       now.AddDate(0, 0, -u.rng.IntBetween(1, 30)),
				AlertsEnabled: u.rng.Bool(),
				LastChange:    random.Pick(u.rng, changeNotes),
				DaysSaved:     u.rng.IntBetween(1, 30),
			},
		})
	}
	return saved
}

// Save fabricates a fresh bookmark for propertyID. Nothing is recorded.
func (u *SavedUsecase) Save(propertyID string, alertsEnabled bool) (domain.SavedProperty, error) {
	p, err := u.store.PropertyByID(propertyID)
	if err != nil {
		return domain.SavedProperty{}, err
	}

	return domain.SavedProperty{
		ID:       "saved-" + propertyID,
		Property: p,
		Meta: domain.SavedMeta{
			SavedAt:       time.Now().UTC(),
			AlertsEnabled: alertsEnabled,
			LastChange:    nil,
			DaysSaved:     0,
		},
	}, nil
}

func ptr(s string) *string { return &s }
