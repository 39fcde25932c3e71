package chord

import (
	"errors"
	"testing"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intervals(degrees []Degree) []string {
	out := make([]string, len(degrees))
	for i, d := range degrees {
		out[i] = d.Interval.String()
	}
	return out
}

func TestParsePlainTriad(t *testing.T) {
	c, err := Parse("C")
	require.NoError(t, err)

	assert.Equal(t, "C", c.Root().String())
	assert.Equal(t, Dominant, c.Quality())
	assert.Equal(t, 5, c.Extension())
	assert.Equal(t, NoSuspension, c.Suspension())
	assert.Equal(t, NotDiminished, c.Diminished())
	assert.False(t, c.Augmented())
	assert.False(t, c.HadExplicitQualityAndExtension())
	assert.Empty(t, c.Alterations())
	assert.Empty(t, c.Additions())
	assert.Empty(t, c.Removals())
}

func TestParseDimNineSusFour(t *testing.T) {
	c, err := Parse("Cdim9sus4")
	require.NoError(t, err)

	assert.Equal(t, Dominant, c.Quality())
	assert.Equal(t, 9, c.Extension())
	assert.Equal(t, FullyDiminished, c.Diminished())
	assert.Equal(t, SusFour, c.Suspension())

	alts := c.Alterations()
	assert.Equal(t, []string{"b3"}, intervals(alts[3]))
	assert.Equal(t, []string{"b5"}, intervals(alts[5]))
	assert.Equal(t, []string{"bb7"}, intervals(alts[7]))

	listing := c.Listing()
	assert.Equal(t, []string{"1", "4", "b5", "bb7", "9"}, intervals(listing.Included))
	assert.Equal(t, []string{"b3", "3"}, intervals(listing.Excluded))
}

func TestParseAugThirteen(t *testing.T) {
	c, err := Parse("Caug13")
	require.NoError(t, err)

	assert.Equal(t, Dominant, c.Quality())
	assert.Equal(t, 13, c.Extension())
	assert.True(t, c.Augmented())
	assert.Equal(t, []string{"1", "3", "#5", "b7", "9", "11", "13"}, intervals(c.Listing().Included))
}

func TestParseSusPlus(t *testing.T) {
	c, err := Parse("Csus+")
	require.NoError(t, err)

	assert.Equal(t, Dominant, c.Quality())
	assert.Equal(t, 9, c.Extension())
	assert.Equal(t, SusFour, c.Suspension())
	assert.True(t, c.Augmented())
	assert.Equal(t, []string{"1", "4", "#5", "b7", "9"}, intervals(c.Listing().Included))
}

func TestParseMajorNineHalfDim(t *testing.T) {
	c, err := Parse("Cmaj9hdim11b13")
	require.NoError(t, err)

	assert.Equal(t, Major, c.Quality())
	assert.Equal(t, 9, c.Extension())
	assert.Equal(t, HalfDiminished, c.Diminished())
	assert.True(t, c.HadExplicitQualityAndExtension())
	assert.Equal(t, []string{"11", "b13"}, intervals(c.Additions()))

	alts := c.Alterations()
	assert.Equal(t, []string{"b3"}, intervals(alts[3]))
	assert.Equal(t, []string{"b5"}, intervals(alts[5]))
	assert.Equal(t, []string{"1", "b3", "b5", "7", "9", "11", "b13"}, intervals(c.Listing().Included))
}

func TestParseQualitiesAndExtensions(t *testing.T) {
	tests := []struct {
		symbol     string
		quality    Quality
		extension  int
		suspension SuspensionMode
		included   []string
	}{
		{symbol: "Cmaj7", quality: Major, extension: 7, included: []string{"1", "3", "5", "7"}},
		{symbol: "CΔ", quality: Major, extension: 5, included: []string{"1", "3", "5"}},
		{symbol: "Cm7", quality: Minor, extension: 7, included: []string{"1", "b3", "5", "b7"}},
		{symbol: "C-9", quality: Minor, extension: 9, included: []string{"1", "b3", "5", "b7", "9"}},
		{symbol: "C7", quality: Dominant, extension: 7, included: []string{"1", "3", "5", "b7"}},
		{symbol: "C13", quality: Dominant, extension: 13, included: []string{"1", "3", "5", "b7", "9", "11", "13"}},
		{symbol: "C5", quality: Dominant, extension: 5, included: []string{"1", "5"}},
		{symbol: "C2", quality: Dominant, extension: 5, suspension: SusTwo, included: []string{"1", "2", "5"}},
		{symbol: "C4", quality: Dominant, extension: 5, suspension: SusFour, included: []string{"1", "4", "5"}},
		{symbol: "Cmaj#11", quality: Major, extension: 11, included: []string{"1", "3", "5", "7", "9", "#11"}},
		{symbol: "Cmaj#15", quality: Major, extension: 15, included: []string{"1", "3", "5", "7", "9", "#11", "13", "15"}},
		{symbol: "Cm#11", quality: Minor, extension: 5, included: []string{"1", "b3", "5", "#11"}},
		{symbol: "Cmadd9", quality: Minor, extension: 5, included: []string{"1", "b3", "5", "9"}},
		{symbol: "Cm7b5", quality: Minor, extension: 7, included: []string{"1", "b3", "b5", "b7"}},
		{symbol: "Cm7(b5)", quality: Minor, extension: 7, included: []string{"1", "b3", "b5", "b7"}},
		{symbol: "C7(b9)", quality: Dominant, extension: 7, included: []string{"1", "3", "5", "b7", "b9"}},
		{symbol: "C13#11", quality: Dominant, extension: 13, included: []string{"1", "3", "5", "b7", "9", "#11", "13"}},
		{symbol: "C(#11)", quality: Dominant, extension: 5, included: []string{"1", "3", "5", "#11"}},
		{symbol: "Cdim", quality: Dominant, extension: 5, included: []string{"1", "b3", "b5"}},
		{symbol: "Cdim7", quality: Dominant, extension: 7, included: []string{"1", "b3", "b5", "bb7"}},
		{symbol: "Chdim", quality: Dominant, extension: 7, included: []string{"1", "b3", "b5", "b7"}},
		{symbol: "Chdim9", quality: Dominant, extension: 9, included: []string{"1", "b3", "b5", "b7", "9"}},
		{symbol: "Caug", quality: Dominant, extension: 5, included: []string{"1", "3", "#5"}},
		{symbol: "Csus4", quality: Dominant, extension: 5, suspension: SusFour, included: []string{"1", "4", "5"}},
		{symbol: "Csus", quality: Dominant, extension: 9, suspension: SusFour, included: []string{"1", "4", "5", "b7", "9"}},
		{symbol: "Csus13", quality: Dominant, extension: 13, suspension: SusFour, included: []string{"1", "4", "5", "b7", "9", "11", "13"}},
		{symbol: "C7sus", quality: Dominant, extension: 7, suspension: SusFour, included: []string{"1", "4", "5", "b7"}},
		{symbol: "C7sus9", quality: Dominant, extension: 7, suspension: SusFour, included: []string{"1", "4", "5", "b7", "9"}},
		{symbol: "C7sus2sus4", quality: Dominant, extension: 7, suspension: SusTwo, included: []string{"1", "2", "4", "5", "b7"}},
		{symbol: "C7no5", quality: Dominant, extension: 7, included: []string{"1", "3", "b7"}},
		{symbol: "C7b5b5", quality: Dominant, extension: 7, included: []string{"1", "3", "b5", "b5", "b7"}},
		{symbol: "Cmaj7addb9", quality: Major, extension: 7, included: []string{"1", "3", "5", "7", "b9"}},
		{symbol: "C7alt", quality: Dominant, extension: 7, included: []string{"1", "3", "5", "b7"}},
		{symbol: "c", quality: Dominant, extension: 5, included: []string{"1", "3", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			c, err := Parse(tt.symbol)
			require.NoError(t, err)
			assert.Equal(t, tt.quality, c.Quality())
			assert.Equal(t, tt.extension, c.Extension())
			assert.Equal(t, tt.suspension, c.Suspension())
			assert.Equal(t, tt.included, intervals(c.Listing().Included))
		})
	}
}

func TestFirstMentionClaimsAlteration(t *testing.T) {
	c, err := Parse("C7b5#5")
	require.NoError(t, err)

	assert.Equal(t, []string{"b5"}, intervals(c.Alterations()[5]))
	assert.Equal(t, []string{"#5"}, intervals(c.Additions()))
}

func TestMacrosStackOnCollision(t *testing.T) {
	c, err := Parse("Cdimaug")
	require.NoError(t, err)

	assert.Equal(t, []string{"b5", "#5"}, intervals(c.Alterations()[5]))
	assert.True(t, c.Augmented())
	assert.Equal(t, FullyDiminished, c.Diminished())
}

func TestPowerChordRemovesThird(t *testing.T) {
	c, err := Parse("C5")
	require.NoError(t, err)

	require.Len(t, c.Removals(), 1)
	assert.Equal(t, 3, c.Removals()[0].Number)
	assert.Equal(t, []string{"3"}, intervals(c.Listing().Excluded))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		symbol   string
		err      error
		kind     string
		fragment string
	}{
		{symbol: "", err: ErrInvalidRoot, kind: "invalid_root"},
		{symbol: "H7", err: ErrInvalidRoot, kind: "invalid_root", fragment: "H"},
		{symbol: "Cfoo", err: ErrUnrecognizedQuality, kind: "unrecognized_quality", fragment: "foo"},
		{symbol: "Cxyz7", err: ErrUnrecognizedQuality, kind: "unrecognized_quality", fragment: "xyz"},
		{symbol: "Cmaj7foo", err: ErrInvalidAlteration, kind: "invalid_alteration", fragment: "foo"},
		{symbol: "C7(b9q)", err: ErrInvalidAlteration, kind: "invalid_alteration", fragment: "q"},
		{symbol: "Cdimdim", err: ErrConflictingMacro, kind: "conflicting_macro", fragment: "dim"},
		{symbol: "Cdimhdim", err: ErrConflictingMacro, kind: "conflicting_macro", fragment: "hdim"},
		{symbol: "Caug+", err: ErrConflictingMacro, kind: "conflicting_macro", fragment: "+"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			c, err := Parse(tt.symbol)
			assert.Nil(t, c)
			require.ErrorIs(t, err, tt.err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind())
			assert.Equal(t, tt.fragment, perr.Fragment)
		})
	}
}

func TestParseDegree(t *testing.T) {
	d, err := ParseDegree("b13", Addition)
	require.NoError(t, err)
	assert.Equal(t, theory.Flat, d.Accidental)
	assert.Equal(t, 13, d.Number)
	assert.Equal(t, "b13 (added)", d.Label())

	for _, token := range []string{"", "#", "b0", "y7"} {
		_, err := ParseDegree(token, Addition)
		assert.ErrorIs(t, err, ErrDegreeSyntax, token)
	}
}
