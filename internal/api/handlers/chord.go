package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/magda-harmony/internal/logger"
	"github.com/Conceptual-Machines/magda-harmony/internal/midi"
	"github.com/Conceptual-Machines/magda-harmony/internal/models"
	"github.com/Conceptual-Machines/magda-harmony/internal/services"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
	"github.com/Conceptual-Machines/magda-harmony/pkg/embedded"
)

const (
	formatJSON = "json"
	formatSMF  = "smf"

	minOctave = -1
	maxOctave = 9
)

type ChordHandler struct {
	service       *services.ChordService
	defaultOctave int
}

func NewChordHandler(service *services.ChordService, defaultOctave int) *ChordHandler {
	return &ChordHandler{
		service:       service,
		defaultOctave: defaultOctave,
	}
}

type ParseRequest struct {
	Symbol          string `json:"symbol" binding:"required"`
	AccidentalMode  string `json:"accidental_mode"`
	IncludeExcluded bool   `json:"include_excluded"`
}

type DegreeResponse struct {
	Degree    string `json:"degree"`
	Source    string `json:"source"`
	Included  bool   `json:"included"`
	Note      string `json:"note"`
	Semitones int    `json:"semitones"`
}

type ChordResponse struct {
	Symbol         string           `json:"symbol"`
	Canonical      string           `json:"canonical"`
	Root           string           `json:"root"`
	Bass           string           `json:"bass,omitempty"`
	Quality        string           `json:"quality"`
	Extension      int              `json:"extension"`
	Suspension     string           `json:"suspension,omitempty"`
	Diminished     string           `json:"diminished,omitempty"`
	Augmented      bool             `json:"augmented"`
	Altered        bool             `json:"altered"`
	AccidentalMode string           `json:"accidental_mode"`
	Notes          []string         `json:"notes"`
	Degrees        []DegreeResponse `json:"degrees"`
	Listing        string           `json:"listing"`
}

// Parse handles POST /api/v1/chords/parse
func (h *ChordHandler) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	mode, err := h.service.ResolveMode(req.AccidentalMode)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	v, err := h.service.ParseVoicing(c.Request.Context(), req.Symbol)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, describe(req.Symbol, v, mode, req.IncludeExcluded))
}

func describe(symbol string, v services.Voicing, mode theory.AccidentalMode, includeExcluded bool) ChordResponse {
	ch := v.Chord
	resp := ChordResponse{
		Symbol:         symbol,
		Canonical:      ch.String(),
		Root:           ch.Root().String(),
		Quality:        ch.Quality().String(),
		Extension:      ch.Extension(),
		Suspension:     ch.Suspension().String(),
		Diminished:     ch.Diminished().String(),
		Augmented:      ch.Augmented(),
		Altered:        ch.Altered(),
		AccidentalMode: mode.String(),
		Listing:        ch.Listing().String(),
	}
	if v.Bass != nil {
		resp.Bass = v.Bass.String()
		resp.Canonical += "/" + resp.Bass
	}

	voices := ch.Notes(mode)
	for _, voice := range voices {
		resp.Notes = append(resp.Notes, voice.Note.String())
	}
	if includeExcluded {
		voices = ch.AllNotes(mode)
	}
	resp.Degrees = make([]DegreeResponse, 0, len(voices))
	for _, voice := range voices {
		resp.Degrees = append(resp.Degrees, DegreeResponse{
			Degree:    voice.Degree.Interval.String(),
			Source:    voice.Degree.Source.String(),
			Included:  voice.Degree.Included,
			Note:      voice.Note.String(),
			Semitones: voice.Degree.Semitones(),
		})
	}
	return resp
}

type MIDIRequest struct {
	Symbol    string  `json:"symbol" binding:"required"`
	Octave    *int    `json:"octave"`
	Velocity  int     `json:"velocity"`
	Beats     float64 `json:"beats"`
	Rhythm    string  `json:"rhythm"`
	Direction string  `json:"direction"`
	BPM       float64 `json:"bpm"`
	Format    string  `json:"format"`
}

type MIDIResponse struct {
	Symbol string             `json:"symbol"`
	Notes  []int              `json:"notes"`
	Events []models.NoteEvent `json:"events"`
}

// MIDI handles POST /api/v1/chords/midi
func (h *ChordHandler) MIDI(c *gin.Context) {
	var req MIDIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	opts, err := h.voicingOptions(req.Octave, req.Velocity)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := checkFormat(req.Format); err != nil {
		respondBadRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	notes, err := h.service.ChordToMIDI(ctx, req.Symbol, opts.Octave)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	events, err := h.service.ChordEventsToNoteEvents(ctx, []models.ChordEvent{{
		ChordSymbol:   req.Symbol,
		DurationBeats: req.Beats,
		Rhythm:        req.Rhythm,
		Direction:     req.Direction,
	}}, opts)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if req.Format == formatSMF {
		writeSMF(c, events, req.BPM, fileName(req.Symbol))
		return
	}
	c.JSON(http.StatusOK, MIDIResponse{Symbol: req.Symbol, Notes: notes, Events: events})
}

type IntervalRequest struct {
	Note           string `json:"note" binding:"required"`
	Interval       string `json:"interval" binding:"required"`
	AccidentalMode string `json:"accidental_mode"`
}

type IntervalResponse struct {
	From         string `json:"from"`
	Interval     string `json:"interval"`
	Note         string `json:"note"`
	Pitch        int    `json:"pitch"`
	Conventional bool   `json:"conventional"`
}

// Interval handles POST /api/v1/notes/interval
func (h *ChordHandler) Interval(c *gin.Context) {
	var req IntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	mode, err := h.service.ResolveMode(req.AccidentalMode)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	from, err := theory.ParseNote(req.Note)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	to, err := from.Interval(req.Interval, mode)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, IntervalResponse{
		From:         from.String(),
		Interval:     req.Interval,
		Note:         to.String(),
		Pitch:        to.Pitch(),
		Conventional: to.IsConventionallySpelled(),
	})
}

// Circle handles GET /api/v1/circle?root=F%23
func (h *ChordHandler) Circle(c *gin.Context) {
	root, err := theory.ParseNote(c.Query("root"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	mode, err := h.service.ResolveMode(c.Query("accidental_mode"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	circle := theory.CircleOfFifths(root, mode)
	names := make([]string, len(circle))
	for i, n := range circle {
		names[i] = n.String()
	}
	c.JSON(http.StatusOK, gin.H{
		"root":            root.String(),
		"accidental_mode": mode.String(),
		"notes":           names,
	})
}

type ExampleResponse struct {
	embedded.ChordExample
	Canonical string   `json:"canonical"`
	Notes     []string `json:"notes"`
}

// Examples handles GET /api/v1/chords/examples
func (h *ChordHandler) Examples(c *gin.Context) {
	examples, err := embedded.ChordExamples()
	if err != nil {
		logger.Error("Failed to load chord examples", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load examples"})
		return
	}

	out := make([]ExampleResponse, 0, len(examples))
	for _, ex := range examples {
		ch, err := h.service.Parse(c.Request.Context(), ex.Symbol)
		if err != nil {
			// The list is static; a failure here is a regression in the parser.
			logger.Error("Chord example no longer parses", err, logger.Fields{"symbol": ex.Symbol})
			continue
		}
		resp := ExampleResponse{ChordExample: ex, Canonical: ch.String()}
		for _, voice := range ch.Notes(h.service.Mode()) {
			resp.Notes = append(resp.Notes, voice.Note.String())
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, gin.H{"examples": out})
}

func (h *ChordHandler) voicingOptions(octave *int, velocity int) (services.VoicingOptions, error) {
	opts := services.VoicingOptions{Octave: h.defaultOctave, Velocity: velocity}
	if octave != nil {
		opts.Octave = *octave
	}
	if opts.Octave < minOctave || opts.Octave > maxOctave {
		return opts, fmt.Errorf("octave must be between %d and %d", minOctave, maxOctave)
	}
	if velocity < 0 || velocity > 127 {
		return opts, fmt.Errorf("velocity must be between 0 and 127")
	}
	return opts, nil
}

func checkFormat(format string) error {
	switch format {
	case "", formatJSON, formatSMF:
		return nil
	}
	return fmt.Errorf("unknown format %q, expected %q or %q", format, formatJSON, formatSMF)
}

func writeSMF(c *gin.Context, events []models.NoteEvent, bpm float64, name string) {
	data, err := midi.Encode(events, midi.WriteOptions{BPM: bpm})
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".mid"))
	c.Data(http.StatusOK, midi.ContentType, data)
}

// fileName makes a chord symbol safe to use as a download name.
func fileName(symbol string) string {
	r := strings.NewReplacer("/", "_over_", "#", "sharp", " ", "", "(", "", ")", "", "\"", "")
	if name := r.Replace(symbol); name != "" {
		return name
	}
	return "chord"
}
