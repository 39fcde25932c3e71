package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing(t *testing.T) {
	assert.Equal(t, 1, Ring(13, 12))
	assert.Equal(t, 12, Ring(0, 12))
	assert.Equal(t, 12, Ring(-12, 12))
	assert.Equal(t, 7, Ring(7, 7))
	assert.Equal(t, 2, Ring(9, 7))

	for n := -60; n <= 60; n++ {
		r := Ring(n, ChromaticSize)
		assert.GreaterOrEqual(t, r, 1, "ring(%d)", n)
		assert.LessOrEqual(t, r, 12, "ring(%d)", n)
		assert.Equal(t, r, Ring(n+12, ChromaticSize), "ring(%d) periodicity", n)
	}
}

func TestAccidentalRoundTrip(t *testing.T) {
	for k := DoubleFlat; k <= DoubleSharp; k++ {
		parsed, err := ParseAccidental(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}

func TestAccidentalString(t *testing.T) {
	tests := []struct {
		acc      Accidental
		expected string
	}{
		{Natural, ""},
		{Sharp, "#"},
		{DoubleSharp, "x"},
		{Flat, "b"},
		{DoubleFlat, "bb"},
		{3, "#x"},
		{4, "xx"},
		{-3, "bbb"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.acc.String())
	}
}

func TestParseAccidentalRejectsUnknownSymbols(t *testing.T) {
	for _, symbol := range []string{"##", "bbb", "n", "X", " "} {
		_, err := ParseAccidental(symbol)
		assert.ErrorIs(t, err, ErrInvalidAccidental, symbol)
	}
}
