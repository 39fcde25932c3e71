package services

import (
	"sort"

	"github.com/Conceptual-Machines/magda-harmony/internal/models"
)

// RhythmTemplate defines timing and accent patterns for chord playback
type RhythmTemplate struct {
	Name string
	// Offsets within a 4-beat cycle, scaled to the event length
	Offsets []float64
	// Velocity multipliers for accents (1.0 = normal)
	Accents []float64
	// Duration multiplier (affects note length)
	Articulation float64
}

const (
	articulationHigh    = 0.9
	articulationMedium  = 0.8
	articulationMidHigh = 0.85
	articulationShort   = 0.4
	articulationOverlap = 1.1

	templateCycleBeats = 4.0
)

var rhythmTemplates = map[string]RhythmTemplate{
	"whole": {
		Name:         "whole",
		Offsets:      []float64{0},
		Accents:      []float64{1.0},
		Articulation: 1.0,
	},
	"half": {
		Name:         "half",
		Offsets:      []float64{0, 2},
		Accents:      []float64{1.0, 0.9},
		Articulation: 1.0,
	},
	"quarters": {
		Name:         "quarters",
		Offsets:      []float64{0, 1, 2, 3},
		Accents:      []float64{1.0, 0.8, 0.9, 0.8},
		Articulation: articulationHigh,
	},
	"8ths": {
		Name:         "8ths",
		Offsets:      []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5},
		Accents:      []float64{1.0, 0.7, 0.9, 0.7, 0.95, 0.7, 0.9, 0.7},
		Articulation: articulationMidHigh,
	},
	"swing": {
		Name:         "swing",
		Offsets:      []float64{0, 0.67, 1, 1.67, 2, 2.67, 3, 3.67},
		Accents:      []float64{1.0, 0.7, 0.9, 0.7, 0.95, 0.7, 0.9, 0.7},
		Articulation: articulationMidHigh,
	},
	"charleston": {
		Name:         "charleston",
		Offsets:      []float64{0, 1.5},
		Accents:      []float64{1.0, 0.9},
		Articulation: articulationMedium,
	},
	"bossa": {
		Name:         "bossa",
		Offsets:      []float64{0, 1.5, 3},
		Accents:      []float64{1.0, 0.8, 0.9},
		Articulation: articulationHigh,
	},
	"waltz": {
		Name:         "waltz",
		Offsets:      []float64{0, 1, 2},
		Accents:      []float64{1.0, 0.7, 0.75},
		Articulation: articulationHigh,
	},
	"offbeat": {
		Name:         "offbeat",
		Offsets:      []float64{0.5, 1.5, 2.5, 3.5},
		Accents:      []float64{0.9, 0.85, 0.9, 0.85},
		Articulation: articulationMidHigh,
	},
	"staccato": {
		Name:         "staccato",
		Offsets:      []float64{0, 1, 2, 3},
		Accents:      []float64{1.0, 0.9, 0.95, 0.9},
		Articulation: articulationShort,
	},
	"legato": {
		Name:         "legato",
		Offsets:      []float64{0, 1, 2, 3},
		Accents:      []float64{0.9, 0.85, 0.9, 0.85},
		Articulation: articulationOverlap,
	},
}

// GetRhythmTemplate returns a rhythm template by name
func GetRhythmTemplate(name string) (RhythmTemplate, bool) {
	tmpl, ok := rhythmTemplates[name]
	return tmpl, ok
}

// RhythmTemplateNames lists the available templates in alphabetical order.
func RhythmTemplateNames() []string {
	names := make([]string, 0, len(rhythmTemplates))
	for name := range rhythmTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// hit is one rhythmic onset inside an event.
type hit struct {
	start    float64
	duration float64
	velocity int
}

// hits spreads the template over an event of the given length. Each hit is
// shortened so it never runs into the next one or past the end of the event.
func (tmpl RhythmTemplate) hits(start, length float64, velocity int) []hit {
	scale := length / templateCycleBeats
	var out []hit
	for i, offset := range tmpl.Offsets {
		pos := offset * scale
		if pos >= length {
			break
		}

		accent := velocity
		if i < len(tmpl.Accents) {
			accent = int(float64(velocity) * tmpl.Accents[i])
		}

		duration := (length / float64(len(tmpl.Offsets))) * tmpl.Articulation
		limit := length - pos
		if i+1 < len(tmpl.Offsets) {
			limit = tmpl.Offsets[i+1]*scale - pos
		}
		if duration > limit {
			duration = limit
		}

		out = append(out, hit{start: start + pos, duration: duration, velocity: accent})
	}
	return out
}

// arpeggiate orders chord notes for the given direction.
func arpeggiate(notes []int, direction string) []int {
	switch direction {
	case "down":
		return reverseSlice(notes)
	case "updown":
		// Top and bottom notes are not repeated at the turns.
		out := append([]int(nil), notes...)
		for i := len(notes) - 2; i > 0; i-- {
			out = append(out, notes[i])
		}
		return out
	}
	return notes
}

// blockEvents plays every note of the chord on every hit.
func blockEvents(notes []int, hits []hit) []models.NoteEvent {
	events := make([]models.NoteEvent, 0, len(notes)*len(hits))
	for _, h := range hits {
		for _, n := range notes {
			events = append(events, models.NoteEvent{
				MidiNoteNumber: n,
				Velocity:       h.velocity,
				StartBeats:     h.start,
				DurationBeats:  h.duration,
			})
		}
	}
	return events
}

// arpeggioEvents plays one note per hit, cycling through the sequence.
func arpeggioEvents(sequence []int, hits []hit) []models.NoteEvent {
	events := make([]models.NoteEvent, 0, len(hits))
	for i, h := range hits {
		events = append(events, models.NoteEvent{
			MidiNoteNumber: sequence[i%len(sequence)],
			Velocity:       h.velocity,
			StartBeats:     h.start,
			DurationBeats:  h.duration,
		})
	}
	return events
}

// evenHits splits an event into equal steps of stepBeats, trimming the last.
func evenHits(start, length, stepBeats float64, velocity int) []hit {
	var out []hit
	for pos := 0.0; pos < length; pos += stepBeats {
		d := stepBeats
		if pos+d > length {
			d = length - pos
		}
		out = append(out, hit{start: start + pos, duration: d, velocity: velocity})
	}
	return out
}

func reverseSlice(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
