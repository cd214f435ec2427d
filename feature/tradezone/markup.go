package tradezone

import (
	"catalog-manager/feature/tradezone/models"
)

// MarkupEntry is a resolved category markup.
type MarkupEntry struct {
	MainCategory string
	Category     string
	Multiplier   float64
}

// MarkupIndex maps a normalized category to its markup. A category name reused under a
// second main category is stored as "<category>-<main category>".
type MarkupIndex map[string]MarkupEntry

// markupFold is the state carried while walking the markup table top to bottom.
type markupFold struct {
	mainCategory string
	index        MarkupIndex
}

func (f markupFold) step(rec models.MarkupRecord) markupFold {
	if rec.Category == "" {
		return f
	}
	if !rec.HasMarkup {
		f.mainCategory = rec.Category
		return f
	}

	key := NormalizeKey(rec.Category)
	if key == "" {
		return f
	}
	if _, taken := f.index[key]; taken {
		key = key + "-" + NormalizeKey(f.mainCategory)
	}
	f.index[key] = MarkupEntry{
		MainCategory: f.mainCategory,
		Category:     rec.Category,
		Multiplier:   1 + rec.Percentage/100,
	}
	return f
}

// BuildMarkupIndex folds the markup table into an index. Rows without a percentage are
// section headers and set the main category of the rows below them.
func BuildMarkupIndex(records []models.MarkupRecord) MarkupIndex {
	f := markupFold{index: make(MarkupIndex, len(records))}
	for _, rec := range records {
		f = f.step(rec)
	}
	return f.index
}

// Resolve returns the multiplier for a product type. Only the plain category key is
// consulted; entries stored under a main-category suffix are never returned here.
func (idx MarkupIndex) Resolve(productType string) (float64, bool) {
	key := NormalizeKey(productType)
	if key == "" {
		return 0, false
	}
	entry, ok := idx[key]
	if !ok {
		return 0, false
	}
	return entry.Multiplier, true
}
