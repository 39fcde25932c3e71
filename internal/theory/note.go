package theory

import (
	"fmt"
	"strings"
)

const letters = "CDEFGAB"

// naturalPitch is the chromatic pitch (C = 1 ... B = 12) of each natural letter.
var naturalPitch = map[byte]int{
	'C': 1, 'D': 3, 'E': 5, 'F': 6, 'G': 8, 'A': 10, 'B': 12,
}

// scalePattern holds, per tonic letter, the accidental its major scale applies
// to degrees 1 through 7.
var scalePattern = map[byte][DiatonicSize]Accidental{
	'C': {0, 0, 0, 0, 0, 0, 0},
	'D': {0, 0, 1, 0, 0, 0, 1},
	'E': {0, 1, 1, 0, 0, 1, 1},
	'F': {0, 0, 0, -1, 0, 0, 0},
	'G': {0, 0, 0, 0, 0, 0, 1},
	'A': {0, 0, 1, 0, 0, 1, 1},
	'B': {0, 1, 1, 0, 1, 1, 1},
}

// Spelling selects how a bare chromatic pitch is given a letter name.
type Spelling int

const (
	// Auto picks the conventional spelling (F# and the flats Db, Eb, Ab, Bb).
	Auto Spelling = iota
	SharpSpelling
	FlatSpelling
)

var (
	sharpSpellings = [ChromaticSize]Note{
		{'C', 0}, {'C', 1}, {'D', 0}, {'D', 1}, {'E', 0}, {'F', 0},
		{'F', 1}, {'G', 0}, {'G', 1}, {'A', 0}, {'A', 1}, {'B', 0},
	}
	flatSpellings = [ChromaticSize]Note{
		{'C', 0}, {'D', -1}, {'D', 0}, {'E', -1}, {'E', 0}, {'F', 0},
		{'G', -1}, {'G', 0}, {'A', -1}, {'A', 0}, {'B', -1}, {'B', 0},
	}
	autoSpellings = [ChromaticSize]Note{
		{'C', 0}, {'D', -1}, {'D', 0}, {'E', -1}, {'E', 0}, {'F', 0},
		{'F', 1}, {'G', 0}, {'A', -1}, {'A', 0}, {'B', -1}, {'B', 0},
	}
)

// conventional is the set of the twelve meantone spellings, with both F# and Gb.
var conventional = map[Note]bool{
	{'C', 0}: true, {'G', 0}: true, {'D', 0}: true, {'A', 0}: true,
	{'E', 0}: true, {'B', 0}: true, {'F', 1}: true, {'G', -1}: true,
	{'D', -1}: true, {'A', -1}: true, {'E', -1}: true, {'B', -1}: true,
	{'F', 0}: true,
}

// Note is a spelled pitch class: a letter name plus an accidental. The zero
// value is not a valid note; use one of the constructors.
type Note struct {
	letter     byte
	accidental Accidental
}

// ParseNote reads a spelled name such as "C", "f#", "Bb" or "Ebb". The letter
// is case-insensitive.
func ParseNote(name string) (Note, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Note{}, fmt.Errorf("%w: empty", ErrInvalidNote)
	}
	letter := name[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if _, ok := naturalPitch[letter]; !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}
	acc, err := ParseAccidental(name[1:])
	if err != nil {
		return Note{}, fmt.Errorf("%w: %q: %v", ErrInvalidNote, name, err)
	}
	return Note{letter: letter, accidental: acc}, nil
}

// MustNote is ParseNote for literals known to be valid.
func MustNote(name string) Note {
	n, err := ParseNote(name)
	if err != nil {
		panic(err)
	}
	return n
}

// NewNote builds a note from an upper-case letter and an accidental class.
func NewNote(letter byte, acc Accidental) (Note, error) {
	if _, ok := naturalPitch[letter]; !ok {
		return Note{}, fmt.Errorf("%w: letter %q", ErrInvalidNote, letter)
	}
	return Note{letter: letter, accidental: acc}, nil
}

// NoteFromDegree builds a note from a diatonic degree counted from C (1 = C,
// 7 = B; other values wrap) and an accidental class.
func NoteFromDegree(degree int, acc Accidental) Note {
	return Note{letter: letters[Ring(degree, DiatonicSize)-1], accidental: acc}
}

// NoteFromPitch spells a chromatic pitch (1 = C ... 12 = B; other values wrap).
func NoteFromPitch(pitch int, spelling Spelling) Note {
	idx := Ring(pitch, ChromaticSize) - 1
	switch spelling {
	case SharpSpelling:
		return sharpSpellings[idx]
	case FlatSpelling:
		return flatSpellings[idx]
	default:
		return autoSpellings[idx]
	}
}

// Letter returns the upper-case letter name.
func (n Note) Letter() byte { return n.letter }

func (n Note) Accidental() Accidental { return n.accidental }

// Degree is the letter's position counted from C (C = 1 ... B = 7).
func (n Note) Degree() int {
	return strings.IndexByte(letters, n.letter) + 1
}

// Pitch is the chromatic pitch class, C = 1 ... B = 12.
func (n Note) Pitch() int {
	return Ring(naturalPitch[n.letter]+int(n.accidental), ChromaticSize)
}

// PitchClass is the zero-based pitch class used by MIDI, C = 0 ... B = 11.
func (n Note) PitchClass() int {
	return n.Pitch() - 1
}

// Semitone is the distance in semitones from the C of the note's own letter
// octave. Unlike PitchClass it does not wrap, so Cb is -1 and B# is 12.
func (n Note) Semitone() int {
	return naturalPitch[n.letter] - 1 + int(n.accidental)
}

func (n Note) String() string {
	if n.letter == 0 {
		return ""
	}
	return string(n.letter) + n.accidental.String()
}

// IsConventionallySpelled reports whether the note is one of the twelve usual
// key spellings.
func (n Note) IsConventionallySpelled() bool {
	return conventional[n]
}

// ConventionalSpelling returns the note unchanged when conventionally spelled,
// otherwise the conventional spelling of the same pitch.
func (n Note) ConventionalSpelling() Note {
	if n.IsConventionallySpelled() {
		return n
	}
	return NoteFromPitch(n.Pitch(), Auto)
}

// Above returns the note the interval reaches from n. The letter follows the
// interval number modulo an octave; the accidental follows n's own major
// scale. When the literal result is not allowed by mode it is re-spelled as
// the nearest natural or single accidental of the same pitch, preferring flats
// only when the accidental sum was negative.
func (n Note) Above(iv Interval, mode AccidentalMode) Note {
	degree := Ring(iv.Number, DiatonicSize)
	letter := letters[Ring(n.Degree()+iv.Number-1, DiatonicSize)-1]
	acc := n.accidental + scalePattern[n.letter][degree-1] + iv.Accidental

	if mode.permits(letter, acc) {
		return Note{letter: letter, accidental: acc}
	}
	pitch := naturalPitch[letter] + int(acc)
	if acc < 0 {
		return NoteFromPitch(pitch, FlatSpelling)
	}
	return NoteFromPitch(pitch, SharpSpelling)
}

// Interval parses token ("b3", "#11", "13") and returns the note it reaches.
func (n Note) Interval(token string, mode AccidentalMode) (Note, error) {
	iv, err := ParseInterval(token)
	if err != nil {
		return Note{}, err
	}
	return n.Above(iv, mode), nil
}
