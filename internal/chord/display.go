package chord

import (
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

// String renders the canonical symbol: root, quality, extension, removals,
// dim/hdim, aug, suspension, alterations and additions, in that order.
// Parsing the result yields the same quality, extension, suspension and
// macros.
func (c *Chord) String() string {
	var sb strings.Builder
	sb.WriteString(c.root.String())
	bareRoot := true

	switch c.quality {
	case Major:
		sb.WriteString("maj")
		bareRoot = false
	case Minor:
		sb.WriteString("m")
		bareRoot = false
	}

	power := c.isPowerChord()
	ext := c.extensionText(power)
	sb.WriteString(ext)
	if ext != "" {
		bareRoot = false
	}

	var tail []string
	for _, d := range c.removed {
		if power && d.Number == 3 && d.Accidental == theory.Natural {
			continue
		}
		tail = append(tail, "no"+d.Interval.String())
	}
	if c.diminished != NotDiminished {
		tail = append(tail, c.diminished.String())
	}
	if c.augmented {
		tail = append(tail, "aug")
	}
	if c.suspension != NoSuspension {
		tail = append(tail, c.suspension.String())
	}
	for _, d := range c.explicitAlterations() {
		tail = append(tail, d.Interval.String())
	}
	for _, d := range c.added {
		tail = append(tail, "add"+d.Interval.String())
	}
	if c.altered {
		tail = append(tail, "alt")
	}

	for _, t := range tail {
		prev := sb.String()
		if needsParens(prev, t, bareRoot) {
			t = "(" + t + ")"
		}
		sb.WriteString(t)
		bareRoot = false
	}
	return sb.String()
}

func (c *Chord) isPowerChord() bool {
	if c.quality != Dominant || c.extension != 5 || c.suspension != NoSuspension {
		return false
	}
	for _, d := range c.removed {
		if d.Number == 3 && d.Accidental == theory.Natural {
			return true
		}
	}
	return false
}

func (c *Chord) defaultExtension() int {
	if c.diminished == HalfDiminished {
		return 7
	}
	return 5
}

// extensionText decides whether the extension must be written. A dominant
// chord with a hidden extension also writes it when the first tail token
// would otherwise be read as a stand-in extension.
func (c *Chord) extensionText(power bool) string {
	if power {
		return "5"
	}
	show := c.extension != c.defaultExtension() || c.sharpEleven
	if !show && c.quality == Dominant && c.firstTailIsQuasiExtension() {
		show = true
	}
	if !show {
		return ""
	}
	if c.quality == Dominant && c.extension == 5 {
		return "(5)"
	}
	text := strconv.Itoa(c.extension)
	if c.sharpEleven {
		text = "#" + text
	}
	return text
}

func (c *Chord) firstTailIsQuasiExtension() bool {
	if len(c.removed) > 0 || c.suspension != NoSuspension {
		return false
	}
	alts := c.explicitAlterations()
	if len(alts) == 0 {
		return false
	}
	first := alts[0]
	return first.Accidental == theory.Natural && quasiExtensions[first.Number]
}

func (c *Chord) explicitAlterations() []Degree {
	var out []Degree
	for _, n := range c.alteredDegrees() {
		for _, d := range c.alterations[n] {
			if d.Source == Alteration {
				out = append(out, d)
			}
		}
	}
	return out
}

// needsParens reports whether t would be misread when appended to prev: an
// accidental straight after the root would change the root, and a digit after
// a digit or a quality would merge into the extension.
func needsParens(prev, t string, bareRoot bool) bool {
	if t == "" || prev == "" {
		return false
	}
	switch first := t[0]; {
	case first == 'b' || first == '#' || first == 'x':
		return bareRoot
	case isDigit(first):
		last := prev[len(prev)-1]
		return isDigit(last) || last == ')' || strings.HasSuffix(prev, "maj") || strings.HasSuffix(prev, "m")
	}
	return false
}
