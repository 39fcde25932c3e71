package theory

var (
	perfectFifth  = Interval{Number: 5}
	perfectFourth = Interval{Number: 4}
)

// CircleOfFifths returns the twelve notes of the circle starting at root, in
// clockwise order. Positions 1-6 are reached by rising fifths and positions
// 11 down to 7 by rising fourths, so the sharp side and the flat side are each
// spelled from the root outwards.
func CircleOfFifths(root Note, mode AccidentalMode) []Note {
	circle := make([]Note, ChromaticSize)
	start := root.ConventionalSpelling()
	circle[0] = start

	next := start
	for i := 1; i <= 6; i++ {
		next = next.Above(perfectFifth, mode)
		circle[i] = next
	}
	next = start
	for i := ChromaticSize - 1; i > 6; i-- {
		next = next.Above(perfectFourth, mode)
		circle[i] = next
	}
	return circle
}
