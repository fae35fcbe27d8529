// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/extract"
	"wander/internal/planner"
)

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Raw    string `json:"raw_response,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlanError maps pipeline failures to HTTP statuses. Extraction failures
// come back as 502 with the reason code and the model's raw text so an
// operator can inspect what the provider actually returned.
func writePlanError(c *gin.Context, err error) {
	var f *extract.Failure
	switch {
	case errors.Is(err, planner.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &f):
		writeJSON(c, http.StatusBadGateway, errorResponse{
			Error:  "could not recover a plan from the model response",
			Reason: string(f.Reason),
			Raw:    f.Raw,
		})
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
