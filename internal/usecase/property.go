package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/rqapp/rq-mobile-api/internal/domain"
	"github.com/rqapp/rq-mobile-api/internal/random"
	"github.com/rqapp/rq-mobile-api/internal/store"
)

const (
	// DefaultPageSize applies when the search request omits pageSize.
	DefaultPageSize = 20
	// MaxPageSize is the clamp applied to any requested pageSize.
	MaxPageSize = 50
)

type PropertyUsecase struct {
	store *store.Store
	rng   *random.Source
}

func NewPropertyUsecase(st *store.Store, rng *random.Source) *PropertyUsecase {
	return &PropertyUsecase{store: st, rng: rng}
}

// Search filters the catalog by case-insensitive substring containment over
// city and title, then pages the result. Page is 1-based and unconstrained:
// out-of-range pages yield empty items, and page <= 0 follows sequence-slice
// semantics where negative offsets wrap from the end of the filtered list.
//
// totalPages is totalItems/pageSize + 1, which over-counts by one whole page
// whenever totalItems divides evenly. Kept for parity with the upstream mock.
func (u *PropertyUsecase) Search(page, pageSize int, query string) ([]domain.Property, domain.PageMeta) {
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	filtered := u.store.Properties()
	if query != "" {
		q := strings.ToLower(query)
		matched := make([]domain.Property, 0, len(filtered))
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Address.City), q) ||
				strings.Contains(strings.ToLower(p.Title), q) {
				matched = append(matched, p)
			}
		}
		filtered = matched
	}

	start := (page - 1) * pageSize
	lo, hi := sliceBounds(len(filtered), start, start+pageSize)
	items := filtered[lo:hi]

	meta := domain.PageMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: len(filtered)/pageSize + 1,
		TotalItems: len(filtered),
	}
	return items, meta
}

// sliceBounds clamps [start, end) to a sequence of length n, with negative
// offsets counting back from the end.
func sliceBounds(n, start, end int) (int, int) {
	if start < 0 {
		start += n
	}
	start = min(max(start, 0), n)
	if end < 0 {
		end += n
	}
	end = min(max(end, 0), n)
	if end < start {
		end = start
	}
	return start, end
}

// Detail returns the stored property merged with enrichment synthesized on
// every read: two reads of the same property may legitimately differ.
func (u *PropertyUsecase) Detail(id string) (domain.PropertyDetail, error) {
	p, err := u.store.PropertyByID(id)
	if err != nil {
		return domain.PropertyDetail{}, err
	}

	return domain.PropertyDetail{
		Property:    p,
		Description: fmt.Sprintf("%s. דירה מרווחת ומוארת ב%s.", p.Title, p.Address.City),
		Media: domain.Media{
			Images: []string{
				fmt.Sprintf("https://picsum.photos/600/400?random=%s-1", p.ID),
				fmt.Sprintf("https://picsum.photos/600/400?random=%s-2", p.ID),
				fmt.Sprintf("https://picsum.photos/600/400?random=%s-3", p.ID),
			},
			Videos: []string{},
		},
		Amenities: domain.Amenities{
			Mamad:          u.rng.Bool(),
			Elevator:       u.rng.Bool(),
			ParkingSpots:   u.rng.IntBetween(0, 2),
			Storage:        u.rng.Bool(),
			BalconySizeSqm: u.rng.IntBetween(0, 20),
			Renovated:      u.rng.Bool(),
			Accessible:     u.rng.Bool(),
			AC:             u.rng.Bool(),
		},
		Prediction: domain.Prediction{
			Forecast12Months:    forecast(p.Price, 1.05),
			Forecast24Months:    forecast(p.Price, 1.08),
			Forecast60Months:    forecast(p.Price, 1.15),
			ExpectedIncreasePct: 5.0,
			AnnualROIPct:        2.5,
			ConfidencePct:       80,
		},
		Neighborhood: domain.NeighborhoodStats{
			Name:            p.Address.Neighborhood,
			AvgPricePerSqm:  p.Price/p.SizeSqm + u.rng.Int64Between(-5_000, 5_000),
			AvgRQScore:      u.rng.IntBetween(70, 85),
			PropertiesCount: u.rng.IntBetween(50, 200),
			Amenities: domain.NeighborhoodAmenities{
				Schools:         u.rng.IntBetween(1, 5),
				Parks:           u.rng.IntBetween(1, 3),
				TransitLines:    u.rng.IntBetween(2, 8),
				ShoppingCenters: u.rng.IntBetween(1, 4),
			},
		},
		Reasons: []domain.Reason{
			{Label: "מיקום מרכזי", Sentiment: "positive"},
			{Label: "מחיר תחרותי", Sentiment: "positive"},
		},
	}, nil
}

// forecast figures are fixed-percentage multipliers of the current price,
// purely illustrative.
func forecast(price int64, mult float64) int64 {
	return int64(math.Round(float64(price) * mult))
}
