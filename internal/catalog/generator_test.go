package catalog_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rqapp/rq-mobile-api/internal/catalog"
	"github.com/rqapp/rq-mobile-api/internal/random"
)

func TestGenerate_CatalogShape(t *testing.T) {
	properties := catalog.Generate(random.New(42))

	require.Len(t, properties, catalog.Size)

	for i, p := range properties {
		assert.Equal(t, fmt.Sprintf("property-%d", i+1), p.ID)
		assert.GreaterOrEqual(t, p.Price, int64(1_000_000))
		assert.LessOrEqual(t, p.Price, int64(6_000_000))
		assert.GreaterOrEqual(t, p.SizeSqm, int64(50))
		assert.LessOrEqual(t, p.SizeSqm, int64(150))
		assert.Equal(t, p.Price/p.SizeSqm, p.PricePerSqm)
		assert.GreaterOrEqual(t, p.RQScore, 40)
		assert.LessOrEqual(t, p.RQScore, 95)
		assert.GreaterOrEqual(t, p.Floor, 1)
		assert.LessOrEqual(t, p.Floor, 15)
		assert.NotEmpty(t, p.RQScoreLabel)
		assert.Contains(t, p.Title, p.Address.City)
		assert.Equal(t, "2025-01-15T10:30:00Z", p.LastUpdatedAt)
		assert.Contains(t, p.PrimaryImageURL, fmt.Sprintf("random=%d", i+1))
	}
}

func TestGenerate_FeaturesSampledWithoutReplacement(t *testing.T) {
	properties := catalog.Generate(random.New(7))

	for _, p := range properties {
		require.NotNil(t, p.Features)
		assert.LessOrEqual(t, len(p.Features), 4)

		seen := make(map[string]bool, len(p.Features))
		for _, f := range p.Features {
			assert.False(t, seen[f], "feature %q repeated on %s", f, p.ID)
			seen[f] = true
		}
	}
}

func TestGenerate_DeterministicForSameSeed(t *testing.T) {
	first := catalog.Generate(random.New(99))
	second := catalog.Generate(random.New(99))

	require.Equal(t, first, second)
}

func TestGenerate_CoordinatesNearIsrael(t *testing.T) {
	for _, p := range catalog.Generate(random.New(3)) {
		assert.GreaterOrEqual(t, p.Address.Latitude, 32.0)
		assert.Less(t, p.Address.Latitude, 33.0)
		assert.GreaterOrEqual(t, p.Address.Longitude, 34.0)
		assert.Less(t, p.Address.Longitude, 35.0)
		assert.True(t, strings.HasPrefix(p.Address.Neighborhood, "שכונת "))
	}
}
