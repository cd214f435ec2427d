package tradezone

import (
	"testing"

	"catalog-manager/feature/tradezone/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeIndex_LookupPrecedence(t *testing.T) {
	idx := BuildAttributeIndex([]models.AttributeRecord{
		{Title: "Desk Lamp", SKU: "TZ-1", PartNumber: "SP-1"},
		{Title: "Floor Lamp", SKU: "TZ-2", PartNumber: "SP-2"},
		{Title: "Wall Lamp", SKU: "TZ-3", PartNumber: "SP-3"},
	})

	tests := []struct {
		name      string
		title     string
		tradezone string
		supplier  string
		want      string
		found     bool
	}{
		{"Title wins", "desk lamp!", "TZ-2", "SP-3", "Desk Lamp", true},
		{"Falls back to SKU", "Unknown", "tz2", "SP-3", "Floor Lamp", true},
		{"Falls back to part number", "Unknown", "TZ-9", "sp 3", "Wall Lamp", true},
		{"Supplier part is not matched against SKU", "Unknown", "", "TZ-1", "", false},
		{"No match", "Unknown", "TZ-9", "SP-9", "", false},
		{"Blank identifiers never match", "", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := idx.Lookup(tt.title, tt.tradezone, tt.supplier)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				require.NotNil(t, rec)
				assert.Equal(t, tt.want, rec.Title)
			}
		})
	}
}

func TestAttributeIndex_LaterRowOverwrites(t *testing.T) {
	idx := BuildAttributeIndex([]models.AttributeRecord{
		{Title: "Desk Lamp", SKU: "A"},
		{Title: "DESK LAMP", SKU: "B"},
	})

	rec, ok := idx.Lookup("Desk Lamp", "", "")
	require.True(t, ok)
	assert.Equal(t, "B", rec.SKU)
	assert.Equal(t, 1, idx.Len())
}

func TestBuildImageIndex(t *testing.T) {
	idx := BuildImageIndex([]models.ImageRecord{
		{Title: "Desk Lamp", Src: "http://img/1.jpg"},
		{Title: "Floor Lamp", Src: "http://img/f.jpg"},
		{Title: "desk-lamp", Src: ""},
		{Title: "DESK LAMP", Src: "http://img/2.jpg"},
	})

	assert.Equal(t, []string{"http://img/1.jpg", "http://img/2.jpg"}, idx.Images("Desk Lamp"))
	assert.Equal(t, []string{"http://img/f.jpg"}, idx.Images("floor lamp"))
	assert.Nil(t, idx.Images("Ceiling Lamp"))
}

func TestBuildIndexes(t *testing.T) {
	idx := BuildIndexes(Sources{
		Attributes: []models.AttributeRecord{{Title: "Desk Lamp"}},
		Markups:    []models.MarkupRecord{{Category: "Lamps", Percentage: 50, HasMarkup: true}},
		Images:     []models.ImageRecord{{Title: "Desk Lamp", Src: "http://img/1.jpg"}},
	})

	require.NotNil(t, idx)
	_, ok := idx.Attributes.Lookup("Desk Lamp", "", "")
	assert.True(t, ok)
	m, ok := idx.Markups.Resolve("Lamps")
	assert.True(t, ok)
	assert.Equal(t, 1.5, m)
	assert.Len(t, idx.Images.Images("Desk Lamp"), 1)
}

func TestBuildIndexes_Empty(t *testing.T) {
	idx := BuildIndexes(Sources{})

	_, ok := idx.Attributes.Lookup("Desk Lamp", "TZ", "SP")
	assert.False(t, ok)
	_, ok = idx.Markups.Resolve("Lamps")
	assert.False(t, ok)
	assert.Nil(t, idx.Images.Images("Desk Lamp"))
}
