package checks

import (
	"context"
	"slices"

	"catalog-manager/core/reconcile"
	"catalog-manager/core/tabular"
	"catalog-manager/feature/tradezone"
	"catalog-manager/feature/tradezone/models"
)

// Source statuses.
const (
	StatusOK             = "ok"
	StatusEmpty          = "empty"
	StatusMissingColumns = "missing_columns"
)

// Source is a configured input and the columns reconciliation reads from it.
type Source struct {
	Name     string
	Location string
	Required []string
}

// SourceReport is the result of checking one source.
type SourceReport struct {
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Status         string   `json:"status"`
	Rows           int      `json:"rows"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

// TradezoneSources lists the inputs of a Tradezone reconciliation.
func TradezoneSources(cfg tradezone.Config) []Source {
	return []Source{
		{
			Name:     "products",
			Location: cfg.ProductsInput,
			Required: []string{
				models.FieldDescription,
				models.FieldGroup,
				models.FieldCostPrice,
				models.FieldShippingInformation,
			},
		},
		{
			Name:     "attributes",
			Location: cfg.AttributesInput,
			Required: []string{models.FieldProductTitle, models.FieldSKU, models.FieldPartNumber},
		},
		{
			Name:     "markups",
			Location: cfg.MarkupsInput,
			Required: []string{models.FieldCategory, models.FieldMarkupPercentage},
		},
		{
			Name:     "images",
			Location: cfg.ImagesInput,
			Required: []string{models.FieldTitle, models.FieldImageSrc},
		},
	}
}

// CheckSources reads every source concurrently and reports whether it has rows and
// carries the required columns.
func CheckSources(ctx context.Context, reader tabular.Reader, sources []Source) []SourceReport {
	locations := make([]string, len(sources))
	for i, s := range sources {
		locations[i] = s.Location
	}
	tables := reconcile.LoadAll(ctx, reader, locations...)

	reports := make([]SourceReport, len(sources))
	for i, s := range sources {
		reports[i] = checkSource(s, tables[i])
	}
	return reports
}

func checkSource(s Source, t tabular.Table) SourceReport {
	r := SourceReport{Name: s.Name, Location: s.Location, Rows: t.Len()}

	if len(t.Header) > 0 {
		for _, col := range s.Required {
			if !slices.Contains(t.Header, col) {
				r.MissingColumns = append(r.MissingColumns, col)
			}
		}
	}

	switch {
	case len(r.MissingColumns) > 0:
		r.Status = StatusMissingColumns
	case t.Len() == 0:
		r.Status = StatusEmpty
	default:
		r.Status = StatusOK
	}
	return r
}

// Healthy reports whether every source passed.
func Healthy(reports []SourceReport) bool {
	for _, r := range reports {
		if r.Status != StatusOK {
			return false
		}
	}
	return true
}
