package theory

import (
	"fmt"
	"strings"
)

// AccidentalMode controls how eagerly interval spelling falls back to a simpler
// enharmonic. The zero value is AllowEnharmonics.
type AccidentalMode int

const (
	// AllowEnharmonics keeps B#, E#, Cb and Fb but never a double accidental.
	AllowEnharmonics AccidentalMode = iota
	// Basic allows only naturals and the ten common single accidentals.
	Basic
	// AllowDoubleAccidentals keeps anything up to a double sharp or flat.
	AllowDoubleAccidentals
)

var accidentalModeNames = map[AccidentalMode]string{
	AllowEnharmonics:       "enharmonics",
	Basic:                  "basic",
	AllowDoubleAccidentals: "doubles",
}

func (m AccidentalMode) String() string {
	if name, ok := accidentalModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("AccidentalMode(%d)", int(m))
}

// ParseAccidentalMode accepts "basic", "enharmonics" or "doubles". An empty
// string selects the default mode.
func ParseAccidentalMode(name string) (AccidentalMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "enharmonics", "allow-enharmonics":
		return AllowEnharmonics, nil
	case "basic":
		return Basic, nil
	case "doubles", "allow-double-accidentals":
		return AllowDoubleAccidentals, nil
	}
	return AllowEnharmonics, fmt.Errorf("%w: %q", ErrInvalidAccidentalMode, name)
}

// permits reports whether letter+acc is an acceptable spelling under the mode.
func (m AccidentalMode) permits(letter byte, acc Accidental) bool {
	switch m {
	case Basic:
		if acc.IsDouble() {
			return false
		}
		switch {
		case acc == Sharp && (letter == 'B' || letter == 'E'):
			return false
		case acc == Flat && (letter == 'C' || letter == 'F'):
			return false
		}
		return true
	case AllowDoubleAccidentals:
		return acc >= DoubleFlat && acc <= DoubleSharp
	default:
		return !acc.IsDouble()
	}
}
