package models

// NoteEvent represents a single musical note with timing and pitch information
type NoteEvent struct {
	MidiNoteNumber int     `json:"midiNoteNumber"`
	Velocity       int     `json:"velocity"`
	StartBeats     float64 `json:"startBeats"`
	DurationBeats  float64 `json:"durationBeats"`
}

// ChordEvent represents a chord with timing information. Rhythm names a
// rhythm template; Direction, when set, plays the chord as an arpeggio
// ("up", "down" or "updown").
type ChordEvent struct {
	ChordSymbol   string  `json:"chordSymbol"`
	StartBeats    float64 `json:"startBeats"`
	DurationBeats float64 `json:"durationBeats"`
	Rhythm        string  `json:"rhythm,omitempty"`
	Direction     string  `json:"direction,omitempty"`
}
