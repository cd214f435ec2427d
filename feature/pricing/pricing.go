package pricing

import (
	"math"
)

// Column names read and written by the price update.
const (
	ColumnPrice     = "Variant Price"
	ColumnCompareAt = "Variant Compare At Price"
)

// Discount computes the new price and compare-at price. A price already below its
// compare-at price is recomputed from the compare-at price; otherwise the current price
// becomes the compare-at price and the discount is applied to it. Prices round up.
func Discount(price, compareAt, pct float64) (newPrice, newCompareAt float64) {
	if price < compareAt {
		return math.Ceil(compareAt - compareAt*pct/100), compareAt
	}
	return math.Ceil(price - price*pct/100), price
}
