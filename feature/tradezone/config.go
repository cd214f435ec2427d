package tradezone

import "catalog-manager/core/reconcile"

// Config holds the locations and defaults of a Tradezone reconciliation run.
// Locations are local paths, s3://<key> objects or db://<table> tables.
type Config struct {
	// ProductsInput is the primary catalog exported from Tradezone.
	ProductsInput string `mapstructure:"products_input" default:"./files/tradezone-products.csv"`
	// AttributesInput is the product attribute table.
	AttributesInput string `mapstructure:"attributes_input" default:"./files/tradezone-products.xlsx"`
	// MarkupsInput is the category markup table.
	MarkupsInput string `mapstructure:"markups_input" default:"./files/tradezone-markup.xlsx"`
	// ImagesInput is the image association table.
	ImagesInput string `mapstructure:"images_input" default:"./files/tradezone-images.csv"`

	// UpdatedOutput receives fully processed products.
	UpdatedOutput string `mapstructure:"updated_output" default:"./files/tradezone-products-updated.csv"`
	// SkippedOutput receives products without cost or weight.
	SkippedOutput string `mapstructure:"skipped_output" default:"./files/tradezone-products-skipped.csv"`
	// NoMarkupOutput receives products whose category has no markup.
	NoMarkupOutput string `mapstructure:"no_markup_output" default:"./files/tradezone-products-no-markup.csv"`

	// DefaultVendor is used when a product has no manufacturer.
	DefaultVendor string `mapstructure:"default_vendor" default:"All Led Direct"`
	// DefaultMarkup is the multiplier applied when no category markup is found.
	DefaultMarkup float64 `mapstructure:"default_markup" default:"2"`
}

// Inputs returns the source locations: products, attributes, markups, images.
func (c Config) Inputs() []string {
	return []string{c.ProductsInput, c.AttributesInput, c.MarkupsInput, c.ImagesInput}
}

// Outputs returns the destination of every lane.
func (c Config) Outputs() map[reconcile.Lane]string {
	return map[reconcile.Lane]string{
		reconcile.LaneUpdated:  c.UpdatedOutput,
		reconcile.LaneSkipped:  c.SkippedOutput,
		reconcile.LaneNoMarkup: c.NoMarkupOutput,
	}
}
