package tradezone

import (
	"regexp"
	"strings"
)

// ShippingAttributes holds the values extracted from a product's shipping text.
// Fields that could not be found are empty.
type ShippingAttributes struct {
	Weight           string
	WeightUnit       string
	Length           string
	Height           string
	Width            string
	PackagingLength  string
	PackagingHeight  string
	PackagingWidth   string
	Barcode          string
	BarcodeSecondary string
	BarcodeTertiary  string
}

var (
	// The unit is captured as written ("kg", "g", "lbs", ...).
	weightPattern = regexp.MustCompile(`(?i)Weight\s*\((.*?)\)\s*([\d.]+)`)

	lengthPattern = regexp.MustCompile(`(?i)Length\s*\(mm\)\s*([\d.]+)`)
	heightPattern = regexp.MustCompile(`(?i)Height\s*\(mm\)\s*([\d.]+)`)
	widthPattern  = regexp.MustCompile(`(?i)Width\s*\(mm\)\s*([\d.]+)`)

	packagingLengthPattern = regexp.MustCompile(`(?i)Length Packaging\s*\(mm\)\s*([\d.]+)`)
	packagingHeightPattern = regexp.MustCompile(`(?i)Height Packaging\s*\(mm\)\s*([\d.]+)`)
	packagingWidthPattern  = regexp.MustCompile(`(?i)Width Packaging\s*\(mm\)\s*([\d.]+)`)

	barcodePattern          = regexp.MustCompile(`(?i)Barcode\s*\n\s*(\d+)`)
	barcodeSecondaryPattern = regexp.MustCompile(`(?i)Barcode \(Secondary\)\s*\n\s*(\d+)`)
	barcodeTertiaryPattern  = regexp.MustCompile(`(?i)Barcode \(Tertiary\)\s*\n\s*(\d+)`)
)

// ExtractShipping parses the free-text shipping block of a product. Every field is matched
// independently and the first match wins; partial extraction is normal.
func ExtractShipping(text string) ShippingAttributes {
	clean := strings.TrimSpace(strings.ReplaceAll(text, "\r", ""))

	attrs := ShippingAttributes{
		Length:           firstGroup(lengthPattern, clean),
		Height:           firstGroup(heightPattern, clean),
		Width:            firstGroup(widthPattern, clean),
		PackagingLength:  firstGroup(packagingLengthPattern, clean),
		PackagingHeight:  firstGroup(packagingHeightPattern, clean),
		PackagingWidth:   firstGroup(packagingWidthPattern, clean),
		Barcode:          firstGroup(barcodePattern, clean),
		BarcodeSecondary: firstGroup(barcodeSecondaryPattern, clean),
		BarcodeTertiary:  firstGroup(barcodeTertiaryPattern, clean),
	}

	if m := weightPattern.FindStringSubmatch(clean); m != nil {
		attrs.Weight = m[2]
		attrs.WeightUnit = strings.ToLower(m[1])
	}

	return attrs
}

func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
