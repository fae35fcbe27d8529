// README: Planner service; orchestrates prompt, AI call, extraction, and route geometry.
package planner

import (
	"context"
	"errors"
	"log"
	"strings"

	"wander/internal/ai"
	"wander/internal/cache"
	"wander/internal/extract"
	"wander/internal/maps"
	"wander/internal/trip"
)

var ErrBadRequest = errors.New("destination is required")

// Planner turns a validated trip request into a renderable plan response.
type Planner struct {
	gen    ai.PlanGenerator
	cache  cache.ResponseCache
	routes *maps.RouteService // nil when no maps key is configured
}

func New(gen ai.PlanGenerator, respCache cache.ResponseCache, routes *maps.RouteService) *Planner {
	return &Planner{gen: gen, cache: respCache, routes: routes}
}

// Response is the augmented plan handed to the rendering collaborator.
// Raw and Candidate are only populated when the caller sets the debug flag.
type Response struct {
	Plan           *trip.Plan `json:"plan"`
	MapsLinks      maps.Links `json:"maps_links"`
	DailyMeals     []DayMeals `json:"daily_meals"`
	Diagnostics    []string   `json:"diagnostics,omitempty"`
	SampleFallback bool       `json:"sample_fallback,omitempty"`
	Raw            string     `json:"raw_response,omitempty"`
	Candidate      string     `json:"extraction_candidate,omitempty"`
}

// Plan runs the full pipeline. Extraction failures are returned as-is
// (*extract.Failure) so the transport layer can surface the reason code and
// the original raw text; a partially recovered plan is never presented as
// complete.
func (p *Planner) Plan(ctx context.Context, req trip.Request, debug bool) (*Response, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, ErrBadRequest
	}

	prompt := ai.BuildPrompt(req)
	key := cache.PromptKey(prompt)

	var sampleFallback bool
	raw, cached := p.cache.Get(ctx, key)
	if !cached {
		var err error
		raw, err = p.gen.GeneratePlan(ctx, req)
		if err != nil {
			// Same degradation the upstream UI relies on: keep the pipeline
			// demonstrable with a canned response instead of a blank page.
			log.Printf("plan generation failed, using sample response: %v", err)
			raw = ai.SampleRawResponse
			sampleFallback = true
		} else {
			p.cache.Set(ctx, key, raw)
		}
	}

	res, err := extract.Extract(raw)
	if err != nil {
		return nil, err
	}
	plan := res.Plan

	deriveVisitSequence(plan)
	days := requestedDays(req, plan)
	deriveItinerary(plan, days)

	plan.Route = trip.ComputeRoute(plan.VisitSequence)
	p.annotateLegs(ctx, plan.Route)

	resp := &Response{
		Plan:           plan,
		MapsLinks:      maps.BuildLinks(plan.MapsQuery, firstNonEmpty(plan.DestinationName, req.Destination), req.Origin),
		DailyMeals:     dailyMeals(plan, days),
		Diagnostics:    res.Diagnostics,
		SampleFallback: sampleFallback,
	}
	if debug {
		resp.Raw = res.Raw
		resp.Candidate = res.Candidate
	}
	return resp, nil
}

// annotateLegs fills per-leg travel times: real directions when a maps client
// is configured, otherwise a naive estimate from the great-circle distance.
func (p *Planner) annotateLegs(ctx context.Context, legs []trip.Leg) {
	for i := range legs {
		if p.routes != nil {
			dur, _, err := p.routes.GetTravelEstimate(ctx, legs[i].From, legs[i].To)
			if err == nil {
				legs[i].EstTravelMinutes = dur.Minutes()
				continue
			}
			log.Printf("travel estimate %s -> %s failed, using naive estimate: %v", legs[i].From, legs[i].To, err)
		}
		legs[i].EstTravelMinutes = trip.EstimateLegDuration(legs[i].DistanceKm).Minutes()
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
