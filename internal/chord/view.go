package chord

import (
	"sort"
	"strings"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

// Degrees returns every degree of the chord, sounding or not, ordered by
// number and accidental. The list is computed once per chord.
func (c *Chord) Degrees() []Degree {
	c.viewOnce.Do(func() {
		c.view = c.materialize()
	})
	return append([]Degree(nil), c.view...)
}

func (c *Chord) materialize() []Degree {
	var out []Degree
	for n := 1; n <= c.extension; n += 2 {
		if n == 3 && c.suspension != NoSuspension {
			out = append(out,
				newDegree(theory.Natural, c.suspension.Degree(), Suspension, true),
				newDegree(theory.Natural, 3, SuspendedThird, false),
			)
			continue
		}
		if c.isRemoved(n) || len(c.alterations[n]) > 0 {
			continue
		}
		out = append(out, Degree{Interval: c.chordTone(n), Source: ChordTone, Included: true})
	}

	for _, d := range c.removed {
		d.Source, d.Included = Removed, false
		out = append(out, d)
	}

	for _, n := range c.alteredDegrees() {
		seen := map[theory.Interval]bool{}
		for _, d := range c.alterations[n] {
			if seen[d.Interval] {
				continue
			}
			seen[d.Interval] = true
			d.Included = n <= c.extension && !c.isRemoved(n) &&
				!(n == 3 && c.suspension != NoSuspension)
			out = append(out, d)
		}
	}

	for _, d := range c.added {
		d.Included = true
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Interval.Less(out[j].Interval)
	})
	return out
}

// chordTone spells an unaltered member of the tertian stack for the chord's
// quality.
func (c *Chord) chordTone(n int) theory.Interval {
	acc := theory.Natural
	switch {
	case n == 3 && c.quality == Minor:
		acc = theory.Flat
	case n == 7 && c.quality != Major:
		acc = theory.Flat
	case n == 11 && c.quality == Major && c.sharpEleven:
		acc = theory.Sharp
	}
	return theory.Interval{Accidental: acc, Number: n}
}

// Voice pairs a chord degree with the note it produces over the root.
type Voice struct {
	Degree Degree
	Note   theory.Note
}

// Notes returns the sounding degrees spelled over the root.
func (c *Chord) Notes(mode theory.AccidentalMode) []Voice {
	var voices []Voice
	for _, d := range c.Degrees() {
		if d.Included {
			voices = append(voices, Voice{Degree: d, Note: c.root.Above(d.Interval, mode)})
		}
	}
	return voices
}

// AllNotes is Notes including the excluded degrees.
func (c *Chord) AllNotes(mode theory.AccidentalMode) []Voice {
	degrees := c.Degrees()
	voices := make([]Voice, 0, len(degrees))
	for _, d := range degrees {
		voices = append(voices, Voice{Degree: d, Note: c.root.Above(d.Interval, mode)})
	}
	return voices
}

// Listing splits the degrees into those that sound and those that do not.
type Listing struct {
	Included []Degree
	Excluded []Degree
}

func (c *Chord) Listing() Listing {
	var l Listing
	for _, d := range c.Degrees() {
		if d.Included {
			l.Included = append(l.Included, d)
		} else {
			l.Excluded = append(l.Excluded, d)
		}
	}
	return l
}

func (l Listing) String() string {
	var sb strings.Builder
	sb.WriteString("included: ")
	sb.WriteString(labels(l.Included))
	if len(l.Excluded) > 0 {
		sb.WriteString("\nexcluded: ")
		sb.WriteString(labels(l.Excluded))
	}
	return sb.String()
}

func labels(degrees []Degree) string {
	parts := make([]string, len(degrees))
	for i, d := range degrees {
		parts[i] = d.Label()
	}
	return strings.Join(parts, ", ")
}
