package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Conceptual-Machines/magda-harmony/internal/models"
)

const (
	// TicksPerQuarter is the resolution of written files.
	TicksPerQuarter = 960
	DefaultBPM      = 120.0
	ContentType     = "audio/midi"

	trackName = "chords"
)

var ErrNoEvents = errors.New("no note events to write")

// WriteOptions configures the written file.
type WriteOptions struct {
	BPM     float64
	Channel uint8
}

type tickEvent struct {
	tick uint64
	on   bool
	key  uint8
	vel  uint8
}

// WriteNoteEvents writes the note events as a single-track Standard MIDI File.
func WriteNoteEvents(w io.Writer, events []models.NoteEvent, opts WriteOptions) error {
	if len(events) == 0 {
		return ErrNoEvents
	}
	if opts.BPM <= 0 {
		opts.BPM = DefaultBPM
	}
	if opts.Channel > 15 {
		return fmt.Errorf("invalid MIDI channel %d", opts.Channel)
	}

	timeline, err := toTicks(events)
	if err != nil {
		return err
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(trackName))
	tr.Add(0, smf.MetaTempo(opts.BPM))

	var last uint64
	for _, ev := range timeline {
		delta := uint32(ev.tick - last)
		last = ev.tick
		if ev.on {
			tr.Add(delta, gomidi.NoteOn(opts.Channel, ev.key, ev.vel))
		} else {
			tr.Add(delta, gomidi.NoteOff(opts.Channel, ev.key))
		}
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("failed to add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write MIDI file: %w", err)
	}
	return nil
}

// Encode is WriteNoteEvents into a byte slice.
func Encode(events []models.NoteEvent, opts WriteOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteNoteEvents(&buf, events, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toTicks turns beat-based events into note on/off pairs in tick order.
// At equal ticks note offs come first so repeated notes retrigger.
func toTicks(events []models.NoteEvent) ([]tickEvent, error) {
	out := make([]tickEvent, 0, len(events)*2)
	for i, ev := range events {
		if ev.MidiNoteNumber < 0 || ev.MidiNoteNumber > 127 {
			return nil, fmt.Errorf("event %d: note %d out of range", i, ev.MidiNoteNumber)
		}
		if ev.StartBeats < 0 || ev.DurationBeats <= 0 {
			return nil, fmt.Errorf("event %d: invalid timing start=%v duration=%v", i, ev.StartBeats, ev.DurationBeats)
		}
		vel := ev.Velocity
		if vel <= 0 || vel > 127 {
			vel = 100
		}
		start := beatsToTicks(ev.StartBeats)
		end := beatsToTicks(ev.StartBeats + ev.DurationBeats)
		if end <= start {
			end = start + 1
		}
		key := uint8(ev.MidiNoteNumber)
		out = append(out,
			tickEvent{tick: start, on: true, key: key, vel: uint8(vel)},
			tickEvent{tick: end, key: key},
		)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].tick != out[j].tick {
			return out[i].tick < out[j].tick
		}
		return !out[i].on && out[j].on
	})
	return out, nil
}

func beatsToTicks(beats float64) uint64 {
	return uint64(math.Round(beats * TicksPerQuarter))
}
