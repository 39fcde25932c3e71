package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// majorSemitones holds the semitone distance of each major-scale degree from
// the tonic.
var majorSemitones = [DiatonicSize]int{0, 2, 4, 5, 7, 9, 11}

// Interval is a generic interval: a diatonic number (1 = unison, 3 = third,
// 9 = ninth, ...) with an accidental applied relative to the major scale.
type Interval struct {
	Accidental Accidental
	Number     int
}

// ParseInterval reads tokens of the form "[accidental]<number>", e.g. "b9",
// "#11", "bb7" or "13".
func ParseInterval(token string) (Interval, error) {
	digits := strings.IndexFunc(token, func(r rune) bool { return r >= '0' && r <= '9' })
	if digits < 0 {
		return Interval{}, fmt.Errorf("%w: %q has no number", ErrInvalidInterval, token)
	}
	acc, err := ParseAccidental(token[:digits])
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %q: %v", ErrInvalidInterval, token, err)
	}
	num, err := strconv.Atoi(token[digits:])
	if err != nil || num < 1 {
		return Interval{}, fmt.Errorf("%w: %q has no positive number", ErrInvalidInterval, token)
	}
	return Interval{Accidental: acc, Number: num}, nil
}

// MustInterval is ParseInterval for literals known to be valid.
func MustInterval(token string) Interval {
	iv, err := ParseInterval(token)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv Interval) String() string {
	return iv.Accidental.String() + strconv.Itoa(iv.Number)
}

// Semitones returns the chromatic size of the interval, counting full octaves.
func (iv Interval) Semitones() int {
	if iv.Number < 1 {
		return int(iv.Accidental)
	}
	octaves := (iv.Number - 1) / DiatonicSize
	return majorSemitones[(iv.Number-1)%DiatonicSize] + 12*octaves + int(iv.Accidental)
}

// Less orders intervals by number, then by accidental.
func (iv Interval) Less(other Interval) bool {
	if iv.Number != other.Number {
		return iv.Number < other.Number
	}
	return iv.Accidental < other.Accidental
}
