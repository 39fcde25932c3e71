package midi

import (
	"bytes"
	"errors"
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Conceptual-Machines/magda-harmony/internal/models"
)

// ReadNoteEvents decodes a Standard MIDI File back into note events,
// pairing each note on with the next note off of the same key.
func ReadNoteEvents(data []byte) (events []models.NoteEvent, e error) {
	// smf panics on some malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported time format %v", s.TimeFormat)
	}
	perBeat := float64(ticks.Ticks4th())

	for _, track := range s.Tracks {
		var abs int64
		open := map[uint8][]int{}
		for _, ev := range track {
			abs += int64(ev.Delta)
			var channel, key, velocity uint8
			switch {
			case ev.Message.GetNoteOn(&channel, &key, &velocity):
				open[key] = append(open[key], len(events))
				events = append(events, models.NoteEvent{
					MidiNoteNumber: int(key),
					Velocity:       int(velocity),
					StartBeats:     float64(abs) / perBeat,
				})
			case ev.Message.GetNoteOff(&channel, &key, &velocity):
				pending := open[key]
				if len(pending) == 0 {
					continue
				}
				idx := pending[0]
				open[key] = pending[1:]
				events[idx].DurationBeats = float64(abs)/perBeat - events[idx].StartBeats
			}
		}
	}
	return events, nil
}
