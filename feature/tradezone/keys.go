package tradezone

import (
	"regexp"
	"strings"

	"catalog-manager/core/utils"
)

var (
	nonKeyChars    = regexp.MustCompile(`[^a-z0-9]`)
	nonHandleChars = regexp.MustCompile(`[^a-z0-9-]`)
	lineBreaks     = regexp.MustCompile(`\r\n|\r|\n`)
)

// NormalizeKey returns the lookup key of a value: lower-cased with every character outside
// [a-z0-9] removed. Non-string values are stringified first.
func NormalizeKey(v any) string {
	return nonKeyChars.ReplaceAllString(strings.ToLower(utils.ToString(v)), "")
}

// Handlize returns a URL-safe handle. Spaces become the separator ("-" unless given)
// and characters outside [a-z0-9-] are stripped.
func Handlize(v any, separator ...string) string {
	sep := "-"
	if len(separator) > 0 {
		sep = separator[0]
	}
	s := strings.ReplaceAll(strings.ToLower(utils.ToString(v)), " ", sep)
	return nonHandleChars.ReplaceAllString(s, "")
}

// NL2BR converts every line break to an XHTML break followed by a newline.
func NL2BR(text string) string {
	return lineBreaks.ReplaceAllString(text, "<br/>\n")
}
