package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat converts various types to float64 using explicit type switching.
// Blank, non-numeric and non-finite values yield 0.
func ToFloat(val any) float64 {
	var f float64
	switch v := val.(type) {
	case nil:
		return 0
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case uint32:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case []byte:
		f = parseFloat(string(v))
	case string:
		f = parseFloat(v)
	default:
		f = parseFloat(fmt.Sprintf("%v", v))
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ToString converts various types to string. A nil value becomes the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return FormatNumber(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatNumber renders a float with the shortest representation that round-trips,
// without exponent notation (15 -> "15", 11.5 -> "11.5").
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
