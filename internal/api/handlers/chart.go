package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/magda-harmony/internal/chart"
	"github.com/Conceptual-Machines/magda-harmony/internal/models"
)

type ChartHandler struct {
	chords *ChordHandler
	parser *chart.Parser
}

func NewChartHandler(chords *ChordHandler, parser *chart.Parser) *ChartHandler {
	return &ChartHandler{chords: chords, parser: parser}
}

type ChartRequest struct {
	DSL      string  `json:"dsl" binding:"required"`
	Octave   *int    `json:"octave"`
	Velocity int     `json:"velocity"`
	BPM      float64 `json:"bpm"`
	Format   string  `json:"format"`
}

type ChartResponse struct {
	Chords     []models.ChordEvent `json:"chords"`
	Notes      []models.NoteEvent  `json:"notes"`
	TotalBeats float64             `json:"total_beats"`
}

// Render handles POST /api/v1/charts
func (h *ChartHandler) Render(c *gin.Context) {
	var req ChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	opts, err := h.chords.voicingOptions(req.Octave, req.Velocity)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := checkFormat(req.Format); err != nil {
		respondBadRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	parsed, err := h.parser.Parse(ctx, req.DSL)
	if err != nil {
		respondBadRequestKind(c, err, "invalid_chart")
		return
	}
	notes, err := h.chords.service.ChordEventsToNoteEvents(ctx, parsed.Events, opts)
	if err != nil {
		respondBadRequestKind(c, err, "invalid_chart")
		return
	}

	if req.Format == formatSMF {
		writeSMF(c, notes, req.BPM, "chart")
		return
	}
	c.JSON(http.StatusOK, ChartResponse{
		Chords:     parsed.Events,
		Notes:      notes,
		TotalBeats: parsed.TotalBeats,
	})
}
