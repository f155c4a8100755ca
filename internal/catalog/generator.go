// Package catalog generates the synthetic property catalog served by the
// mock API. Generation runs once at process start; the resulting slice is
// never mutated afterwards.
package catalog

import (
	"fmt"

	"github.com/rqapp/rq-mobile-api/internal/domain"
	"github.com/rqapp/rq-mobile-api/internal/random"
)

// Size is the number of properties generated at startup.
const Size = 50

var (
	cities  = []string{"תל אביב", "ירושלים", "חיפה", "ראשון לציון", "נתניה"}
	streets = []string{"הרצל", "דיזנגוף", "אלנבי", "בוגרשוב", "שבזי"}

	propertyTypes = []domain.PropertyType{
		domain.TypeApartment,
		domain.TypePenthouse,
		domain.TypeHouse,
	}

	features = []string{"mamad", "elevator", "parking", "storage", "balcony", "renovated"}

	roomOptions = []float64{1.5, 2, 2.5, 3, 3.5, 4, 5}

	// The label is drawn independently of the numeric score. Kept that way
	// for parity with the upstream mock.
	scoreLabels = []string{"השקעה מצוינת", "השקעה טובה", "הוגן"}
)

// lastUpdated is the same fixed timestamp on every generated property.
const lastUpdated = "2025-01-15T10:30:00Z"

// Generate produces the full catalog from rng. Same seed, same catalog.
func Generate(rng *random.Source) []domain.Property {
	properties := make([]domain.Property, 0, Size)

	for i := 1; i <= Size; i++ {
		city := random.Pick(rng, cities)
		price := rng.Int64Between(1_000_000, 6_000_000)
		size := rng.Int64Between(50, 150)
		rooms := random.Pick(rng, roomOptions)

		properties = append(properties, domain.Property{
			ID:           fmt.Sprintf("property-%d", i),
			Title:        fmt.Sprintf("דירה %d חדרים ב%s", int(rooms), city),
			PropertyType: random.Pick(rng, propertyTypes),
			Address: domain.Address{
				Street:       random.Pick(rng, streets),
				Number:       fmt.Sprintf("%d", rng.IntBetween(1, 100)),
				City:         city,
				Neighborhood: fmt.Sprintf("שכונת %d", rng.IntBetween(1, 10)),
				Latitude:     32.0 + rng.Float64(),
				Longitude:    34.0 + rng.Float64(),
			},
			Price:           price,
			PricePerSqm:     price / size,
			Rooms:           rooms,
			SizeSqm:         size,
			Floor:           rng.IntBetween(1, 15),
			TotalFloors:     rng.IntBetween(3, 20),
			RQScore:         rng.IntBetween(40, 95),
			RQScoreLabel:    random.Pick(rng, scoreLabels),
			PrimaryImageURL: fmt.Sprintf("https://picsum.photos/400/300?random=%d", i),
			LastUpdatedAt:   lastUpdated,
			Features:        random.Sample(rng, features, rng.IntBetween(0, 4)),
		})
	}

	return properties
}
