package theory

import (
	"fmt"
	"strings"
)

// Accidental is the numeric accidental class of a spelled note: negative values
// are flats, positive values are sharps.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// ParseAccidental converts one of "", "#", "x", "b", "bb" into its class.
func ParseAccidental(symbol string) (Accidental, error) {
	switch symbol {
	case "":
		return Natural, nil
	case "#":
		return Sharp, nil
	case "x":
		return DoubleSharp, nil
	case "b":
		return Flat, nil
	case "bb":
		return DoubleFlat, nil
	}
	return Natural, fmt.Errorf("%w: %q", ErrInvalidAccidental, symbol)
}

// String renders the accidental symbol. Classes outside [-2, 2] render as
// repeated flats, or a sharp followed by double sharps.
func (a Accidental) String() string {
	switch {
	case a == Natural:
		return ""
	case a < 0:
		return strings.Repeat("b", int(-a))
	}
	var sb strings.Builder
	if a%2 == 1 {
		sb.WriteString("#")
	}
	sb.WriteString(strings.Repeat("x", int(a/2)))
	return sb.String()
}

// IsDouble reports whether the accidental is two or more steps from natural.
func (a Accidental) IsDouble() bool {
	return a >= DoubleSharp || a <= DoubleFlat
}
