package tradezone

import (
	"catalog-manager/feature/tradezone/models"
)

// AttributeIndex finds attribute records by title, SKU or part number.
// A later record with the same key replaces the earlier one.
type AttributeIndex struct {
	byTitle      map[string]*models.AttributeRecord
	bySKU        map[string]*models.AttributeRecord
	byPartNumber map[string]*models.AttributeRecord
}

// BuildAttributeIndex indexes every record under its three normalized identifiers.
// Identifiers that normalize to "" are not indexed.
func BuildAttributeIndex(records []models.AttributeRecord) AttributeIndex {
	idx := AttributeIndex{
		byTitle:      make(map[string]*models.AttributeRecord, len(records)),
		bySKU:        make(map[string]*models.AttributeRecord, len(records)),
		byPartNumber: make(map[string]*models.AttributeRecord, len(records)),
	}
	for i := range records {
		rec := &records[i]
		put(idx.byTitle, rec.Title, rec)
		put(idx.bySKU, rec.SKU, rec)
		put(idx.byPartNumber, rec.PartNumber, rec)
	}
	return idx
}

// Lookup tries the product title, then the Tradezone part number against the SKU column,
// then the supplier part number against the part number column.
func (idx AttributeIndex) Lookup(title, tradezonePartNumber, supplierPartNumber string) (*models.AttributeRecord, bool) {
	if rec, ok := get(idx.byTitle, title); ok {
		return rec, true
	}
	if rec, ok := get(idx.bySKU, tradezonePartNumber); ok {
		return rec, true
	}
	return get(idx.byPartNumber, supplierPartNumber)
}

// Len returns the number of distinct titles indexed.
func (idx AttributeIndex) Len() int {
	return len(idx.byTitle)
}

func put(m map[string]*models.AttributeRecord, id string, rec *models.AttributeRecord) {
	if key := NormalizeKey(id); key != "" {
		m[key] = rec
	}
}

func get(m map[string]*models.AttributeRecord, id string) (*models.AttributeRecord, bool) {
	key := NormalizeKey(id)
	if key == "" {
		return nil, false
	}
	rec, ok := m[key]
	return rec, ok
}

// ImageIndex maps a normalized title to its image URLs in source order.
type ImageIndex map[string][]string

// BuildImageIndex groups image URLs by title. Rows without a URL are ignored.
func BuildImageIndex(records []models.ImageRecord) ImageIndex {
	idx := make(ImageIndex)
	for _, rec := range records {
		if rec.Src == "" {
			continue
		}
		key := NormalizeKey(rec.Title)
		idx[key] = append(idx[key], rec.Src)
	}
	return idx
}

// Images returns the URLs for a title, or nil.
func (idx ImageIndex) Images(title string) []string {
	return idx[NormalizeKey(title)]
}

// Sources holds the auxiliary record sets the indexes are built from.
type Sources struct {
	Attributes []models.AttributeRecord
	Markups    []models.MarkupRecord
	Images     []models.ImageRecord
}

// Indexes bundles the read-only lookups used during a run.
type Indexes struct {
	Attributes AttributeIndex
	Markups    MarkupIndex
	Images     ImageIndex
}

// BuildIndexes builds all three indexes once.
func BuildIndexes(src Sources) *Indexes {
	return &Indexes{
		Attributes: BuildAttributeIndex(src.Attributes),
		Markups:    BuildMarkupIndex(src.Markups),
		Images:     BuildImageIndex(src.Images),
	}
}
