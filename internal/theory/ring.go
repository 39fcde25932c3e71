package theory

import "golang.org/x/exp/constraints"

const (
	// ChromaticSize is the number of pitch classes in an octave.
	ChromaticSize = 12
	// DiatonicSize is the number of letter names in an octave.
	DiatonicSize = 7
)

// Ring maps n onto the 1-based range [1, bounds], so Ring(13, 12) == 1 and
// Ring(0, 12) == 12.
func Ring[T constraints.Signed](n, bounds T) T {
	x := (n-1)%bounds + 1
	if x <= 0 {
		x += bounds
	}
	return x
}
