// README: Trip-plan handler (request validation and pipeline invocation).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wander/internal/planner"
	"wander/internal/trip"
)

// generation can legitimately take a while; directions calls add more.
const planTimeout = 90 * time.Second

type PlanHandler struct {
	planner *planner.Planner
	debug   bool // server-wide switch gating the ?debug=1 affordance
}

func NewPlanHandler(p *planner.Planner, debug bool) *PlanHandler {
	return &PlanHandler{planner: p, debug: debug}
}

type planRequest struct {
	Destination string   `json:"destination"`
	Origin      string   `json:"origin"`
	Preferences []string `json:"preferences"`
	Days        int      `json:"days"`
	Budget      string   `json:"budget"`
}

// Create handles POST /api/trips/plan.
func (h *PlanHandler) Create(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}
	if req.Days < 0 {
		writeError(c, http.StatusBadRequest, "days must be positive")
		return
	}
	if req.Days == 0 {
		req.Days = 1
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	debug := h.debug && c.Query("debug") == "1"
	resp, err := h.planner.Plan(ctx, trip.Request{
		Destination: req.Destination,
		Origin:      strings.TrimSpace(req.Origin),
		Preferences: req.Preferences,
		Days:        req.Days,
		Budget:      strings.TrimSpace(req.Budget),
	}, debug)
	if err != nil {
		writePlanError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, resp)
}
