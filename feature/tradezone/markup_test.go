package tradezone

import (
	"testing"

	"catalog-manager/feature/tradezone/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(category string) models.MarkupRecord {
	return models.MarkupRecord{Category: category}
}

func entry(category string, pct float64) models.MarkupRecord {
	return models.MarkupRecord{Category: category, Percentage: pct, HasMarkup: true}
}

func TestBuildMarkupIndex_Multiplier(t *testing.T) {
	for _, pct := range []float64{0.5, 10, 25, 50, 100, 150} {
		idx := BuildMarkupIndex([]models.MarkupRecord{entry("Lamps", pct)})

		m, ok := idx.Resolve("Lamps")
		require.True(t, ok)
		assert.Equal(t, 1+pct/100, m)
	}
}

func TestBuildMarkupIndex_MainCategoryFromHeaders(t *testing.T) {
	idx := BuildMarkupIndex([]models.MarkupRecord{
		header("Indoor Lighting"),
		entry("Downlights", 40),
		header("Outdoor Lighting"),
		entry("Floodlights", 60),
	})

	require.Len(t, idx, 2)
	assert.Equal(t, "Indoor Lighting", idx["downlights"].MainCategory)
	assert.Equal(t, "Downlights", idx["downlights"].Category)
	assert.InDelta(t, 1.4, idx["downlights"].Multiplier, 1e-9)
	assert.Equal(t, "Outdoor Lighting", idx["floodlights"].MainCategory)
}

func TestBuildMarkupIndex_Disambiguation(t *testing.T) {
	idx := BuildMarkupIndex([]models.MarkupRecord{
		header("Indoor Lighting"),
		entry("Accessories", 30),
		header("Outdoor Lighting"),
		entry("Accessories", 70),
	})

	plain, ok := idx["accessories"]
	require.True(t, ok)
	assert.Equal(t, "Indoor Lighting", plain.MainCategory)
	assert.InDelta(t, 1.3, plain.Multiplier, 1e-9)

	suffixed, ok := idx["accessories-outdoorlighting"]
	require.True(t, ok)
	assert.Equal(t, "Outdoor Lighting", suffixed.MainCategory)
	assert.InDelta(t, 1.7, suffixed.Multiplier, 1e-9)
}

func TestMarkupIndex_ResolveIgnoresMainCategory(t *testing.T) {
	idx := BuildMarkupIndex([]models.MarkupRecord{
		header("Indoor Lighting"),
		entry("Accessories", 30),
		header("Outdoor Lighting"),
		entry("Accessories", 70),
	})

	m, ok := idx.Resolve("Accessories")
	require.True(t, ok)
	assert.InDelta(t, 1.3, m, 1e-9)

	_, ok = idx.Resolve("Outdoor Lighting")
	assert.False(t, ok)
}

func TestBuildMarkupIndex_IgnoresBlankCategories(t *testing.T) {
	idx := BuildMarkupIndex([]models.MarkupRecord{
		header("Indoor Lighting"),
		{Category: "", Percentage: 20, HasMarkup: true},
		header(""),
		entry("Downlights", 40),
		entry("***", 10),
	})

	require.Len(t, idx, 1)
	assert.Equal(t, "Indoor Lighting", idx["downlights"].MainCategory)
}

func TestMarkupIndex_ResolveMiss(t *testing.T) {
	idx := BuildMarkupIndex([]models.MarkupRecord{entry("Lamps", 50)})

	_, ok := idx.Resolve("Switches")
	assert.False(t, ok)
	_, ok = idx.Resolve("")
	assert.False(t, ok)
}
