package tradezone

import (
	"catalog-manager/core/tabular"
)

// Columns is the header of every export lane. The names, metafield paths included, are read
// by the downstream catalog importer and must not change.
var Columns = []string{
	"Handle",
	"Title",
	"Body (HTML)",
	"Vendor",
	"Type",
	"Tags",
	"Status",
	"Option1 Name",
	"Option1 Value",
	"Variant SKU",
	"Variant Grams",
	"Variant Weight Unit",
	"Variant Inventory Tracker",
	"Variant Inventory Qty",
	"Variant Inventory Policy",
	"Variant Fulfillment Service",
	"Variant Price",
	"Cost per item",
	"Variant Requires Shipping",
	"Variant Taxable",
	"Variant Barcode",
	"Image Src",
	"Image Position",
	"Image Alt Text",
	"Tradezone Part Number (product.metafields.tradezone.part_number)",
	"Supplier Part Number (product.metafields.tradezone.supplier_part_number)",
	"Sub Group (product.metafields.tradezone.sub_group)",
	"Warranty Information (product.metafields.tradezone.warranty)",
	"Attributes (product.metafields.tradezone.attributes)",
	"Shipping Information (product.metafields.tradezone.shipping)",
	"Length (product.metafields.tradezone.length)",
	"Height (product.metafields.tradezone.height)",
	"Width (product.metafields.tradezone.width)",
	"Length Packaging (product.metafields.tradezone.length_packaging)",
	"Height Packaging (product.metafields.tradezone.height_packaging)",
	"Width Packaging (product.metafields.tradezone.width_packaging)",
	"Barcode (product.metafields.tradezone.barcode)",
}

// ExportRow is one line of the catalog import, either a product or an extra image of the
// product above it. All values are already formatted.
type ExportRow struct {
	Handle                    string
	Title                     string
	BodyHTML                  string
	Vendor                    string
	Type                      string
	Tags                      string
	Status                    string
	Option1Name               string
	Option1Value              string
	VariantSKU                string
	VariantGrams              string
	VariantWeightUnit         string
	VariantInventoryTracker   string
	VariantInventoryQty       string
	VariantInventoryPolicy    string
	VariantFulfillmentService string
	VariantPrice              string
	CostPerItem               string
	VariantRequiresShipping   string
	VariantTaxable            string
	VariantBarcode            string
	ImageSrc                  string
	ImagePosition             string
	ImageAltText              string
	TradezonePartNumber       string
	SupplierPartNumber        string
	SubGroup                  string
	Warranty                  string
	Attributes                string
	Shipping                  string
	Length                    string
	Height                    string
	Width                     string
	LengthPackaging           string
	HeightPackaging           string
	WidthPackaging            string
	Barcode                   string
}

// Values returns the row in Columns order.
func (r ExportRow) Values() []string {
	return []string{
		r.Handle,
		r.Title,
		r.BodyHTML,
		r.Vendor,
		r.Type,
		r.Tags,
		r.Status,
		r.Option1Name,
		r.Option1Value,
		r.VariantSKU,
		r.VariantGrams,
		r.VariantWeightUnit,
		r.VariantInventoryTracker,
		r.VariantInventoryQty,
		r.VariantInventoryPolicy,
		r.VariantFulfillmentService,
		r.VariantPrice,
		r.CostPerItem,
		r.VariantRequiresShipping,
		r.VariantTaxable,
		r.VariantBarcode,
		r.ImageSrc,
		r.ImagePosition,
		r.ImageAltText,
		r.TradezonePartNumber,
		r.SupplierPartNumber,
		r.SubGroup,
		r.Warranty,
		r.Attributes,
		r.Shipping,
		r.Length,
		r.Height,
		r.Width,
		r.LengthPackaging,
		r.HeightPackaging,
		r.WidthPackaging,
		r.Barcode,
	}
}

// Record converts the row to a field-keyed record.
func (r ExportRow) Record() tabular.Record {
	values := r.Values()
	rec := make(tabular.Record, len(Columns))
	for i, col := range Columns {
		rec[col] = values[i]
	}
	return rec
}

// ExportTable builds the table written for one lane. An empty lane still carries the header.
func ExportTable(rows []ExportRow) tabular.Table {
	t := tabular.Table{
		Header:  append([]string(nil), Columns...),
		Records: make([]tabular.Record, 0, len(rows)),
	}
	for _, row := range rows {
		t.Records = append(t.Records, row.Record())
	}
	return t
}
