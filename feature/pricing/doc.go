// Package pricing applies a storewide discount to a catalog export.
//
// For every product the compare-at price keeps the undiscounted value and the variant
// price is set to the discounted value, rounded up to a whole unit.
package pricing
