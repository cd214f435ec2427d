// Package database handles database connections and raw table reads.
//
// It provides a wrapper around GORM to properly configure MySQL connections based on the
// application's configuration. Catalog sources may live in database tables (for example a
// markup table maintained by the pricing team); ReadTable returns every row of such a table
// as column-ordered string values so that it can be treated like any other spreadsheet.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, rows, err := database.ReadTable(ctx, db, "tradezone_markups")
package database
