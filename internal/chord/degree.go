package chord

import (
	"fmt"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

// Source records why a degree is part of a chord.
type Source int

const (
	ChordTone Source = iota
	Removed
	Alteration
	DimMacro
	HalfDimMacro
	AugMacro
	Addition
	Suspension
	SuspendedThird
)

var sourceLabels = [...]string{
	ChordTone:      "chord tone",
	Removed:        "removed",
	Alteration:     "alteration",
	DimMacro:       "dim",
	HalfDimMacro:   "hdim",
	AugMacro:       "aug",
	Addition:       "added",
	Suspension:     "suspension",
	SuspendedThird: "suspended third",
}

func (s Source) String() string {
	if s < 0 || int(s) >= len(sourceLabels) {
		return fmt.Sprintf("Source(%d)", int(s))
	}
	return sourceLabels[s]
}

// Degree is one scale degree of a chord, measured from the root.
type Degree struct {
	theory.Interval
	Source   Source
	Included bool
}

// ParseDegree reads a degree token such as "b9" or "13".
func ParseDegree(token string, source Source) (Degree, error) {
	iv, err := theory.ParseInterval(token)
	if err != nil {
		return Degree{}, fmt.Errorf("%w: %v", ErrDegreeSyntax, err)
	}
	return Degree{Interval: iv, Source: source}, nil
}

func newDegree(acc theory.Accidental, num int, source Source, included bool) Degree {
	return Degree{
		Interval: theory.Interval{Accidental: acc, Number: num},
		Source:   source,
		Included: included,
	}
}

// Label renders the degree with its provenance, e.g. "b5 (hdim)".
func (d Degree) Label() string {
	return fmt.Sprintf("%s (%s)", d.Interval, d.Source)
}
