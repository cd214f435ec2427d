// Package tradezone reconciles the Tradezone supplier catalog into a catalog import.
//
// Every row of the primary catalog is matched against three auxiliary tables:
//  1. Attributes: richer product data and up to five images, matched by title, then by
//     Tradezone part number (SKU column), then by supplier part number.
//  2. Markups: category multipliers. Rows without a percentage are section headers that
//     name the main category of the rows below them.
//  3. Images: ordered image URLs by product title.
//
// Each product produces one export row plus one row per extra image, routed as a unit to
// one of three lanes: updated, skipped (no cost or no weight) or no_markup.
//
// # Components
//
//   - NormalizeKey, Handlize: lookup keys and URL handles.
//   - ExtractShipping: weight, dimensions and barcodes from the shipping text.
//   - BuildIndexes: the read-only lookups, built once per run.
//   - Engine: the per-record reconciliation.
//   - Service: loads sources, runs the engine and writes the lanes.
//   - Handler, Feature: HTTP trigger.
//
// # HTTP Endpoints
//
//   - POST /tradezone/reconcile : Run the configured reconciliation and return its summary.
package tradezone
