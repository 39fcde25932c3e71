package chord

import (
	"sort"
	"sync"

	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

type Quality int

const (
	Dominant Quality = iota
	Major
	Minor
)

func (q Quality) String() string {
	switch q {
	case Major:
		return "major"
	case Minor:
		return "minor"
	}
	return "dominant"
}

type SuspensionMode int

const (
	NoSuspension SuspensionMode = iota
	SusTwo
	SusFour
)

func (s SuspensionMode) String() string {
	switch s {
	case SusTwo:
		return "sus2"
	case SusFour:
		return "sus4"
	}
	return ""
}

// Degree returns the scale degree replacing the third, or 0.
func (s SuspensionMode) Degree() int {
	switch s {
	case SusTwo:
		return 2
	case SusFour:
		return 4
	}
	return 0
}

type DiminishedMode int

const (
	NotDiminished DiminishedMode = iota
	HalfDiminished
	FullyDiminished
)

func (d DiminishedMode) String() string {
	switch d {
	case HalfDiminished:
		return "hdim"
	case FullyDiminished:
		return "dim"
	}
	return ""
}

// Chord is a parsed chord symbol. It is immutable once Parse returns and safe
// for concurrent use.
type Chord struct {
	symbol      string
	root        theory.Note
	quality     Quality
	extension   int
	suspension  SuspensionMode
	diminished  DiminishedMode
	augmented   bool
	altered     bool
	sharpEleven bool
	explicit    bool

	alterations map[int][]Degree
	added       []Degree
	removed     []Degree

	viewOnce sync.Once
	view     []Degree
}

// Symbol is the text the chord was parsed from.
func (c *Chord) Symbol() string { return c.symbol }

func (c *Chord) Root() theory.Note { return c.root }

func (c *Chord) Quality() Quality { return c.quality }

// Extension is the highest member of the chord's tertian stack.
func (c *Chord) Extension() int { return c.extension }

func (c *Chord) Suspension() SuspensionMode { return c.suspension }

func (c *Chord) Diminished() DiminishedMode { return c.diminished }

func (c *Chord) Augmented() bool { return c.augmented }

// Altered reports whether the symbol carried the "alt" marker.
func (c *Chord) Altered() bool { return c.altered }

// SharpEleven reports a major chord written with a #11 or #15 extension.
func (c *Chord) SharpEleven() bool { return c.sharpEleven }

// HadExplicitQualityAndExtension is false when the symbol had neither quality
// letters nor a bare extension after the root.
func (c *Chord) HadExplicitQualityAndExtension() bool { return c.explicit }

// Alterations returns a copy of the altered degrees keyed by degree number.
func (c *Chord) Alterations() map[int][]Degree {
	out := make(map[int][]Degree, len(c.alterations))
	for n, alts := range c.alterations {
		out[n] = append([]Degree(nil), alts...)
	}
	return out
}

// Additions returns the added degrees in the order they were written.
func (c *Chord) Additions() []Degree { return append([]Degree(nil), c.added...) }

// Removals returns the removed degrees in the order they were written.
func (c *Chord) Removals() []Degree { return append([]Degree(nil), c.removed...) }

func (c *Chord) alteredDegrees() []int {
	nums := make([]int, 0, len(c.alterations))
	for n := range c.alterations {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

func (c *Chord) isRemoved(num int) bool {
	for _, d := range c.removed {
		if d.Number == num {
			return true
		}
	}
	return false
}
