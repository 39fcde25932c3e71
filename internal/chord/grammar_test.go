package chord

import (
	"testing"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenValues(tokens []token) []string {
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.value
	}
	return values
}

func TestClean(t *testing.T) {
	assert.Equal(t, "Cmaj7(#11)", Clean(" C maj7 / (#11) "))
	assert.Equal(t, "CΔ7", Clean("CΔ7."))
	assert.Equal(t, "Bb-7b5", Clean("Bb-7b5!"))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  []string
		remainder string
	}{
		{name: "stacked alterations", input: "b9#11", expected: []string{"b9", "#11"}},
		{name: "sus then add", input: "sus4add9", expected: []string{"4", "9"}},
		{name: "half diminished tail", input: "hdim11b13", expected: []string{"hdim", "11", "b13"}},
		{name: "keywords ignore case", input: "DimAUGsus2", expected: []string{"dim", "aug", "2"}},
		{name: "plus is aug", input: "+5", expected: []string{"aug", "5"}},
		{name: "double flat", input: "bb7", expected: []string{"bb7"}},
		{name: "add with accidental", input: "addb9no5", expected: []string{"b9", "5"}},
		{name: "longest sus suffix", input: "sus13", expected: []string{"13"}},
		{name: "bare sus", input: "sus", expected: []string{""}},
		{name: "alt marker", input: "alt", expected: []string{"alt"}},
		{name: "numeral split", input: "b99", expected: []string{"b9", "9"}},
		{name: "add two digits", input: "add11", expected: []string{"11"}},
		{name: "unknown remainder", input: "b9foo", expected: []string{"b9"}, remainder: "foo"},
		{name: "sus one is not a suffix", input: "sus1", expected: []string{""}, remainder: "1"},
		{name: "add zero", input: "add0", expected: []string{}, remainder: "add0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, rest := tokenize(tt.input)
			assert.Equal(t, tt.remainder, rest)
			if len(tt.expected) == 0 {
				assert.Empty(t, tokens)
				return
			}
			assert.Equal(t, tt.expected, tokenValues(tokens))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		symbol         string
		root           byte
		rootAccidental theory.Accidental
		quality        string
		extension      string
		tail           []string
	}{
		{symbol: "C", root: 'C'},
		{symbol: "c7", root: 'C', extension: "7"},
		{symbol: "Cmaj9hdim11b13", root: 'C', quality: "maj", extension: "9", tail: []string{"hdim", "11", "b13"}},
		{symbol: "Caug13", root: 'C', tail: []string{"aug", "13"}},
		{symbol: "C(#11)", root: 'C', tail: []string{"#11"}},
		{symbol: "C#11", root: 'C', rootAccidental: theory.Sharp, extension: "11"},
		{symbol: "Bbm7(b5)", root: 'B', rootAccidental: theory.Flat, quality: "m", extension: "7", tail: []string{"b5"}},
		{symbol: "CΔ7", root: 'C', quality: "Δ", extension: "7"},
		{symbol: "Cmin7", root: 'C', quality: "min", extension: "7"},
		{symbol: "Cmajor", root: 'C', quality: "major"},
		{symbol: "Cmadd9", root: 'C', quality: "m", tail: []string{"9"}},
		{symbol: "CM#11", root: 'C', quality: "M", extension: "#11"},
		{symbol: "Cdim9sus4", root: 'C', tail: []string{"dim", "9", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			p, err := split(tt.symbol)
			require.NoError(t, err)
			assert.Equal(t, tt.root, p.root)
			assert.Equal(t, tt.rootAccidental, p.rootAccidental)
			assert.Equal(t, tt.quality, p.quality)
			assert.Equal(t, tt.extension, p.extension)
			if len(tt.tail) == 0 {
				assert.Empty(t, p.tail)
			} else {
				assert.Equal(t, tt.tail, tokenValues(p.tail))
			}
		})
	}
}

func TestLookupQuality(t *testing.T) {
	tests := map[string]Quality{
		"": Dominant, "M": Major, "Δ": Major, "maj": Major, "MAJ": Major, "Major": Major,
		"ma": Major, "t": Major, "m": Minor, "-": Minor, "mi": Minor, "MIN": Minor, "minor": Minor,
	}
	for token, expected := range tests {
		q, ok := lookupQuality(token)
		assert.True(t, ok, token)
		assert.Equal(t, expected, q, token)
	}

	_, ok := lookupQuality("dom")
	assert.False(t, ok)
}

func TestDiagnoseInvariant(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		require.IsType(t, &InvariantError{}, r)
		assert.Contains(t, r.(*InvariantError).Error(), "C7")
	}()
	_ = diagnose("C7", "7")
}
