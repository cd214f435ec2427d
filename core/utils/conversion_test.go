package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want float64
	}{
		{"Nil", nil, 0},
		{"Blank", "", 0},
		{"Spaces", "  ", 0},
		{"Integer string", "10", 10},
		{"Decimal string", " 4.5 ", 4.5},
		{"Garbage", "abc", 0},
		{"Trailing unit", "10kg", 0},
		{"NaN string", "NaN", 0},
		{"Inf", math.Inf(1), 0},
		{"Int", 7, 7},
		{"Float", 1.25, 1.25},
		{"Bytes", []byte("3"), 3},
		{"Bool", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFloat(tt.val))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "15", ToString(15.0))
	assert.Equal(t, "true", ToString(true))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "15", FormatNumber(15))
	assert.Equal(t, "11.5", FormatNumber(11.5))
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "1000000", FormatNumber(1e6))
}
