package theory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(notes []Note) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

func TestCircleOfFifths(t *testing.T) {
	tests := []struct {
		root     string
		expected string
	}{
		{"C", "C G D A E B F# Db Ab Eb Bb F"},
		{"F", "F C G D A E B Gb Db Ab Eb Bb"},
		{"A#", "Bb F C G D A E B Gb Db Ab Eb"},
	}
	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			assert.Equal(t, tt.expected, names(CircleOfFifths(MustNote(tt.root), Basic)))
		})
	}
}

func TestCircleOfFifthsCoversEveryPitch(t *testing.T) {
	for pitch := 1; pitch <= ChromaticSize; pitch++ {
		seen := map[int]bool{}
		for _, n := range CircleOfFifths(NoteFromPitch(pitch, Auto), AllowEnharmonics) {
			seen[n.Pitch()] = true
		}
		assert.Len(t, seen, ChromaticSize)
	}
}
