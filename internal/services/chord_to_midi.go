package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/magda-harmony/internal/chord"
	"github.com/Conceptual-Machines/magda-harmony/internal/models"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

const (
	minMIDINote = 0
	maxMIDINote = 127

	defaultVelocity     = 100
	defaultChordBeats   = 4.0
	defaultArpeggioStep = 0.25 // 16th notes
)

// VoicingOptions controls how chords are turned into note events.
type VoicingOptions struct {
	Octave   int // octave of the chord root, C4 = 60
	Velocity int
}

func (o VoicingOptions) withDefaults() VoicingOptions {
	if o.Velocity <= 0 || o.Velocity > maxMIDINote {
		o.Velocity = defaultVelocity
	}
	return o
}

// SplitSlash separates a slash chord ("Cmaj7/E") into chord and bass note.
// The bass is empty when the symbol has no slash.
func SplitSlash(symbol string) (string, string) {
	parts := strings.SplitN(symbol, "/", 2)
	if len(parts) != 2 {
		return strings.TrimSpace(symbol), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// Voicing is a parsed chord plus its optional slash bass.
type Voicing struct {
	Chord *chord.Chord
	Bass  *theory.Note
}

// ParseVoicing parses a chord symbol that may carry a slash bass note.
func (s *ChordService) ParseVoicing(ctx context.Context, symbol string) (Voicing, error) {
	chordPart, bassPart := SplitSlash(symbol)
	c, err := s.Parse(ctx, chordPart)
	if err != nil {
		return Voicing{}, err
	}
	v := Voicing{Chord: c}
	if bassPart != "" {
		bass, err := theory.ParseNote(bassPart)
		if err != nil {
			return Voicing{}, fmt.Errorf("invalid bass note in %q: %w", symbol, err)
		}
		v.Bass = &bass
	}
	return v, nil
}

// MIDINotes voices the chord's sounding degrees upward from the root in the
// given octave. A slash bass is prepended one octave lower.
func (v Voicing) MIDINotes(octave int) []int {
	rootMIDI := (octave+1)*12 + v.Chord.Root().Semitone()

	var notes []int
	if v.Bass != nil {
		if bass := octave*12 + v.Bass.Semitone(); bass >= minMIDINote && bass <= maxMIDINote {
			notes = append(notes, bass)
		}
	}
	for _, d := range v.Chord.Degrees() {
		if !d.Included {
			continue
		}
		n := rootMIDI + d.Semitones()
		if n < minMIDINote || n > maxMIDINote {
			continue
		}
		notes = append(notes, n)
	}
	return notes
}

// ChordToMIDI converts a chord symbol, optionally with a slash bass, into
// MIDI note numbers (0-127).
func (s *ChordService) ChordToMIDI(ctx context.Context, symbol string, octave int) ([]int, error) {
	v, err := s.ParseVoicing(ctx, symbol)
	if err != nil {
		return nil, err
	}
	notes := v.MIDINotes(octave)
	if len(notes) == 0 {
		return nil, fmt.Errorf("no valid MIDI notes generated for chord: %s", symbol)
	}
	return notes, nil
}

// ChordEventsToNoteEvents voices a chord chart. Events with a rhythm template
// are played on the template's hits; events with a direction are arpeggiated.
func (s *ChordService) ChordEventsToNoteEvents(ctx context.Context, events []models.ChordEvent, opts VoicingOptions) ([]models.NoteEvent, error) {
	opts = opts.withDefaults()

	var out []models.NoteEvent
	for i, ev := range events {
		notes, err := s.ChordToMIDI(ctx, ev.ChordSymbol, opts.Octave)
		if err != nil {
			return nil, fmt.Errorf("invalid chord %d in progression: %s: %w", i+1, ev.ChordSymbol, err)
		}
		length := ev.DurationBeats
		if length <= 0 {
			length = defaultChordBeats
		}

		var hits []hit
		if ev.Rhythm != "" {
			tmpl, ok := GetRhythmTemplate(ev.Rhythm)
			if !ok {
				return nil, fmt.Errorf("unknown rhythm template: %s", ev.Rhythm)
			}
			hits = tmpl.hits(ev.StartBeats, length, opts.Velocity)
		}

		switch {
		case ev.Direction != "":
			if hits == nil {
				hits = evenHits(ev.StartBeats, length, defaultArpeggioStep, opts.Velocity)
			}
			out = append(out, arpeggioEvents(arpeggiate(notes, ev.Direction), hits)...)
		case hits != nil:
			out = append(out, blockEvents(notes, hits)...)
		default:
			out = append(out, blockEvents(notes, []hit{{start: ev.StartBeats, duration: length, velocity: opts.Velocity}})...)
		}
	}
	return out, nil
}

// NoteNameToMIDI converts a note name like "E1", "C4", "F#3", "Bb-1" to a MIDI
// note number (C4 = 60 = middle C), clamped to 0-127.
func NoteNameToMIDI(noteName string) (int, error) {
	split := strings.IndexFunc(noteName, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	if split <= 0 {
		return 0, fmt.Errorf("missing octave in note name: %s", noteName)
	}

	note, err := theory.ParseNote(noteName[:split])
	if err != nil {
		return 0, err
	}
	octave, err := strconv.Atoi(noteName[split:])
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note name %s: %w", noteName, err)
	}

	midiNote := (octave+1)*12 + note.Semitone()
	if midiNote < minMIDINote {
		midiNote = minMIDINote
	}
	if midiNote > maxMIDINote {
		midiNote = maxMIDINote
	}
	return midiNote, nil
}
