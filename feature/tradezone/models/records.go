package models

import (
	"strconv"
	"strings"

	"catalog-manager/core/tabular"
	"catalog-manager/core/utils"
)

// Column names of the Tradezone product export (primary catalog).
const (
	FieldDescription         = "Description"
	FieldGroup               = "Group"
	FieldSupplierPartNumber  = "Supplier Part Number"
	FieldTradezonePartNumber = "Tradezone Part Number"
	FieldCostPrice           = "Cost Price"
	FieldManufacturer        = "Manufacturer"
	FieldSearchTerms         = "Search Terms"
	FieldSubGroup            = "Sub Group"
	FieldProductDetails      = "Product Details"
	FieldWarrantyInformation = "Warranty Information (From Install"
	FieldAttributes          = "Attributes"
	FieldShippingInformation = "Shipping Information"
)

// Column names of the attribute table.
const (
	FieldProductTitle = "Product Title"
	FieldPartNumber   = "Part number"
	FieldSKU          = "SKU"
	// FieldImagePrefix is followed by the slot number 1..5.
	FieldImagePrefix = "Image"
)

// Column names of the markup table.
const (
	FieldCategory         = "Category"
	FieldMarkupPercentage = "Website list price mark up %"
)

// Column names of the image table.
const (
	FieldTitle    = "Title"
	FieldImageSrc = "Image Src"
)

// ImageSlots is the number of image positions an exported product can carry.
const ImageSlots = 5

// PrimaryRecord is one product row of the supplier catalog.
type PrimaryRecord struct {
	Title               string
	Type                string
	SupplierPartNumber  string
	TradezonePartNumber string
	// Cost is the numeric cost price; blank or malformed values are 0.
	Cost                float64
	Manufacturer        string
	SearchTerms         string
	SubGroup            string
	ProductDetails      string
	WarrantyInformation string
	Attributes          string
	ShippingInformation string
}

// NewPrimaryRecord converts a raw row. Missing columns read as "".
func NewPrimaryRecord(r tabular.Record) PrimaryRecord {
	return PrimaryRecord{
		Title:               r.Get(FieldDescription),
		Type:                r.Get(FieldGroup),
		SupplierPartNumber:  r.Get(FieldSupplierPartNumber),
		TradezonePartNumber: r.Get(FieldTradezonePartNumber),
		Cost:                utils.ToFloat(r.Get(FieldCostPrice)),
		Manufacturer:        r.Get(FieldManufacturer),
		SearchTerms:         r.Get(FieldSearchTerms),
		SubGroup:            r.Get(FieldSubGroup),
		ProductDetails:      r.Get(FieldProductDetails),
		WarrantyInformation: r.Get(FieldWarrantyInformation),
		Attributes:          r.Get(FieldAttributes),
		ShippingInformation: r.Get(FieldShippingInformation),
	}
}

// AttributeRecord is one row of the richer product attribute table.
type AttributeRecord struct {
	Title      string
	PartNumber string
	SKU        string
	Images     [ImageSlots]string
}

// NewAttributeRecord converts a raw row.
func NewAttributeRecord(r tabular.Record) AttributeRecord {
	a := AttributeRecord{
		Title:      r.Get(FieldProductTitle),
		PartNumber: r.Get(FieldPartNumber),
		SKU:        r.Get(FieldSKU),
	}
	for i := range a.Images {
		a.Images[i] = strings.TrimSpace(r.Get(FieldImagePrefix + strconv.Itoa(i+1)))
	}
	return a
}

// Image returns the URL of a 1-based image slot, or "".
func (a *AttributeRecord) Image(slot int) string {
	if a == nil || slot < 1 || slot > ImageSlots {
		return ""
	}
	return a.Images[slot-1]
}

// MarkupRecord is one row of the category markup table. Rows without a percentage are
// section headers naming the main category of the rows that follow.
type MarkupRecord struct {
	Category   string
	Percentage float64
	HasMarkup  bool
}

// NewMarkupRecord converts a raw row. A blank, zero or malformed percentage marks a header.
// Cells formatted as "25%" are read as 25.
func NewMarkupRecord(r tabular.Record) MarkupRecord {
	raw := strings.TrimSuffix(strings.TrimSpace(r.Get(FieldMarkupPercentage)), "%")
	pct := utils.ToFloat(raw)
	return MarkupRecord{
		Category:   r.Get(FieldCategory),
		Percentage: pct,
		HasMarkup:  pct != 0,
	}
}

// ImageRecord is one row of the image association table.
type ImageRecord struct {
	Title string
	Src   string
}

// NewImageRecord converts a raw row.
func NewImageRecord(r tabular.Record) ImageRecord {
	return ImageRecord{
		Title: r.Get(FieldTitle),
		Src:   strings.TrimSpace(r.Get(FieldImageSrc)),
	}
}

// PrimaryRecords converts every row of a table.
func PrimaryRecords(t tabular.Table) []PrimaryRecord {
	return convert(t, NewPrimaryRecord)
}

// AttributeRecords converts every row of a table.
func AttributeRecords(t tabular.Table) []AttributeRecord {
	return convert(t, NewAttributeRecord)
}

// MarkupRecords converts every row of a table.
func MarkupRecords(t tabular.Table) []MarkupRecord {
	return convert(t, NewMarkupRecord)
}

// ImageRecords converts every row of a table.
func ImageRecords(t tabular.Table) []ImageRecord {
	return convert(t, NewImageRecord)
}

func convert[T any](t tabular.Table, fn func(tabular.Record) T) []T {
	out := make([]T, 0, len(t.Records))
	for _, r := range t.Records {
		out = append(out, fn(r))
	}
	return out
}
