// Package config provides configuration management for the Catalog Manager.
//
// It utilizes Viper for loading configuration from an optional config.yaml, a .env file
// and environment variables. Defaults come from the `default` struct tags of every
// section, so each key can be overridden by an environment variable named after its
// path (e.g. TRADEZONE_PRODUCTS_INPUT for tradezone.products_input).
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Database: MySQL connection details for db:// sources
//   - SFTP: Optional delivery of written exports
//   - Tradezone: Reconciliation sources, outputs and defaults
//   - Pricing, ProductType: Settings of the catalog maintenance commands
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Tradezone.ProductsInput)
package config
