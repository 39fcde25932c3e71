package midi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/magda-harmony/internal/models"
)

func TestWriteNoteEventsRoundTrip(t *testing.T) {
	events := []models.NoteEvent{
		{MidiNoteNumber: 60, Velocity: 100, StartBeats: 0, DurationBeats: 4},
		{MidiNoteNumber: 64, Velocity: 90, StartBeats: 0, DurationBeats: 4},
		{MidiNoteNumber: 67, Velocity: 80, StartBeats: 0, DurationBeats: 4},
		{MidiNoteNumber: 62, Velocity: 100, StartBeats: 4, DurationBeats: 2.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteNoteEvents(&buf, events, WriteOptions{}))
	assert.Equal(t, "MThd", buf.String()[:4])

	got, err := ReadNoteEvents(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, got, len(events))

	for _, want := range events {
		assert.Contains(t, got, want)
	}
}

func TestWriteNoteEventsRetriggersRepeatedNotes(t *testing.T) {
	events := []models.NoteEvent{
		{MidiNoteNumber: 60, Velocity: 100, StartBeats: 0, DurationBeats: 1},
		{MidiNoteNumber: 60, Velocity: 100, StartBeats: 1, DurationBeats: 1},
	}
	data, err := Encode(events, WriteOptions{BPM: 90})
	require.NoError(t, err)

	got, err := ReadNoteEvents(data)
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestWriteNoteEventsErrors(t *testing.T) {
	tests := []struct {
		name   string
		events []models.NoteEvent
		opts   WriteOptions
	}{
		{name: "empty", events: nil},
		{name: "note out of range", events: []models.NoteEvent{{MidiNoteNumber: 128, DurationBeats: 1}}},
		{name: "zero duration", events: []models.NoteEvent{{MidiNoteNumber: 60}}},
		{name: "negative start", events: []models.NoteEvent{{MidiNoteNumber: 60, StartBeats: -1, DurationBeats: 1}}},
		{name: "bad channel", events: []models.NoteEvent{{MidiNoteNumber: 60, DurationBeats: 1}}, opts: WriteOptions{Channel: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Error(t, WriteNoteEvents(&buf, tt.events, tt.opts))
			assert.Zero(t, buf.Len())
		})
	}
}

func TestReadNoteEventsRejectsGarbage(t *testing.T) {
	_, err := ReadNoteEvents([]byte("not a midi file"))
	assert.Error(t, err)
}
