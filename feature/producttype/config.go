package producttype

// Config holds the settings of a product type update.
type Config struct {
	// Input is the catalog export to retype.
	Input string `mapstructure:"input" default:"./files/products.xlsx"`
	// Output is where the retyped catalog is written.
	Output string `mapstructure:"output" default:"./files/products-types.xlsx"`
	// Sheet is the sheet name used for xlsx output.
	Sheet string `mapstructure:"sheet" default:"Products"`
	// MappingFile is the YAML list of collection handles and product types.
	MappingFile string `mapstructure:"mapping_file" default:"product-types.yaml"`
}
