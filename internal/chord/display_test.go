package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		symbol   string
		expected string
	}{
		{"C", "C"},
		{"Cmaj7", "Cmaj7"},
		{"CΔ", "Cmaj"},
		{"C-9", "Cm9"},
		{"Cm7b5", "Cm7b5"},
		{"Bbm7(b5)", "Bbm7b5"},
		{"C#7", "C#7"},
		{"C5", "C5"},
		{"Cno3", "C5"},
		{"Cadd9no3", "C5add9"},
		{"C2", "Csus2"},
		{"Csus+", "C9augsus4"},
		{"Cdim9sus4", "C9dimsus4"},
		{"Caug13", "C13aug"},
		{"Cmaj9hdim11b13", "Cmaj9hdimadd11addb13"},
		{"Chdim", "Chdim"},
		{"Chdim5", "C(5)hdim"},
		{"C(b5)", "C(b5)"},
		{"Cb(b5)", "Cb(b5)"},
		{"C(#11)", "Cadd#11"},
		{"Cmaj#11", "Cmaj#11"},
		{"C7(b9)", "C7addb9"},
		{"C7no5", "C7no5"},
		{"C7(5)", "C7(5)"},
		{"C7b5#5", "C7b5add#5"},
		{"Caddb93", "C(5)(3)addb9"},
		{"C7alt", "C7alt"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			c, err := Parse(tt.symbol)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.String())
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	symbols := []string{
		"C", "Cmaj7", "Cm9", "C13#11", "Cmaj#11", "Cmaj#15", "Cm#11", "C5", "C2", "C4",
		"Csus", "Csus+", "Csus13", "C7sus9", "C7sus2sus4", "Cdim", "Cdim7", "Chdim", "Chdim9",
		"Chdim5", "Cmhdim", "Cmaj7hdim", "Cdim9sus4", "Caug13", "Cmaj9hdim11b13", "C(b5)",
		"C(#11)", "C7(b9)", "C7b5#5", "Cdimaug", "Cadd9no3", "Caddb93", "C7(5)", "Cm(3)",
		"Ebm7b5", "F#7alt", "Bbmaj13(#11)", "Gno5", "Amadd9", "Dsus2", "E7sus4b9",
	}

	for _, symbol := range symbols {
		t.Run(symbol, func(t *testing.T) {
			original, err := Parse(symbol)
			require.NoError(t, err)

			display := original.String()
			reparsed, err := Parse(display)
			require.NoError(t, err, "display %q", display)

			assert.Equal(t, original.Root(), reparsed.Root(), display)
			assert.Equal(t, original.Quality(), reparsed.Quality(), display)
			assert.Equal(t, original.Extension(), reparsed.Extension(), display)
			assert.Equal(t, original.Suspension(), reparsed.Suspension(), display)
			assert.Equal(t, original.Diminished(), reparsed.Diminished(), display)
			assert.Equal(t, original.Augmented(), reparsed.Augmented(), display)
			assert.Equal(t, display, reparsed.String())
		})
	}
}
