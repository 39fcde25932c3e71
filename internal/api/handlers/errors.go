package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Conceptual-Machines/magda-harmony/internal/chord"
	"github.com/Conceptual-Machines/magda-harmony/internal/logger"
	"github.com/Conceptual-Machines/magda-harmony/internal/theory"
)

// ErrorResponse is returned for every rejected request.
type ErrorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind"`
	Fragment string `json:"fragment,omitempty"`
}

var theoryErrorKinds = []struct {
	err  error
	kind string
}{
	{theory.ErrInvalidAccidentalMode, "invalid_accidental_mode"},
	{theory.ErrInvalidInterval, "invalid_interval"},
	{theory.ErrInvalidNote, "invalid_note"},
	{theory.ErrInvalidAccidental, "invalid_note"},
}

// errorResponse classifies err for the client, using fallback when nothing
// more specific applies.
func errorResponse(err error, fallback string) ErrorResponse {
	resp := ErrorResponse{Error: err.Error(), Kind: fallback}

	var perr *chord.ParseError
	if errors.As(err, &perr) {
		resp.Kind = perr.Kind()
		resp.Fragment = perr.Fragment
		return resp
	}
	for _, k := range theoryErrorKinds {
		if errors.Is(err, k.err) {
			resp.Kind = k.kind
			break
		}
	}
	return resp
}

func respondBadRequest(c *gin.Context, err error) {
	respondBadRequestKind(c, err, "bad_request")
}

func respondBadRequestKind(c *gin.Context, err error, fallback string) {
	resp := errorResponse(err, fallback)

	fields := logger.WithContext(c)
	fields["error_kind"] = resp.Kind
	fields["error"] = resp.Error
	logger.Warn("Request rejected", fields)

	c.JSON(http.StatusBadRequest, resp)
}
