package pricing

// Config holds the settings of a price update.
type Config struct {
	// Input is the catalog export to reprice.
	Input string `mapstructure:"input" default:"./files/products.xlsx"`
	// Output is where the repriced catalog is written.
	Output string `mapstructure:"output" default:"./files/products-updated.xlsx"`
	// Sheet is the sheet name used for xlsx output.
	Sheet string `mapstructure:"sheet" default:"Products"`
	// DiscountPercentage is taken off the compare-at price.
	DiscountPercentage float64 `mapstructure:"discount_percentage" default:"12"`
}
