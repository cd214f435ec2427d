// Package models defines the typed records read from the four Tradezone sources.
//
// Raw spreadsheet rows are converted here, at the I/O boundary, so that the reconciliation
// engine never addresses columns by name. Missing columns become "" and malformed numbers
// become 0; neither is an error.
package models
