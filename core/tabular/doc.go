// Package tabular converts spreadsheet-like sources into field-keyed records and back.
//
// The catalog tools only ever need "a file becomes a list of rows keyed by column name"
// and the reverse, so this package hides the physical format and location:
//
//   - Local files: .csv (RFC 4180) and .xlsx/.xlsm (first sheet on read).
//   - s3://<object key>: objects in the configured bucket, format chosen by extension.
//   - db://<table>: every row of a SQL table.
//
// # Failure Contract
//
// Read and Write never return errors to the caller. A failed read is logged and yields an
// empty Table; a failed write is logged and dropped. Missing inputs therefore degrade a run
// (for example, no image table) instead of aborting it.
//
// # Usage
//
//	io := tabular.NewIO(logger, tabular.WithStorage(client, "catalog"))
//	table := io.Read(ctx, "./files/tradezone-products.csv")
//	io.Write(ctx, "s3://exports/updated.csv", table, "sheet1")
package tabular
