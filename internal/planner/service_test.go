package planner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wander/internal/ai"
	"wander/internal/cache"
	"wander/internal/extract"
	"wander/internal/trip"
)

// stubGenerator is a test double for ai.PlanGenerator.
type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) GeneratePlan(_ context.Context, _ trip.Request) (string, error) {
	s.calls++
	return s.response, s.err
}

const stubResponse = `===JSON_START===
{
  "destination_name": "Mathura, India",
  "maps_query": "Mathura,India",
  "itinerary": [
    {"day_number": 1, "summary": "Temples", "activities": ["Janmabhoomi"], "approximate_cost": 500}
  ],
  "visit_sequence": [
    {"order": 1, "location_name": "Shri Krishna Janmabhoomi", "latitude": 27.4921, "longitude": 77.6745,
     "nearby_food_recommendations": [{"name": "Brijwasi Sweets", "rating": 4.2}]},
    {"order": 2, "location_name": "Banke Bihari Temple", "latitude": 27.5807, "longitude": 77.7061}
  ],
  "popular_dinner_recommendations": [{"name": "Brijwasi Sweets", "rating": 4.2}]
}
===JSON_END===`

func newTestPlanner(gen ai.PlanGenerator) *Planner {
	return New(gen, cache.NewMemoryCache(time.Minute), nil)
}

func TestPlan_FullPipeline(t *testing.T) {
	gen := &stubGenerator{response: stubResponse}
	p := newTestPlanner(gen)

	resp, err := p.Plan(context.Background(), trip.Request{Destination: "Mathura", Days: 2}, false)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if resp.Plan.DestinationName != "Mathura, India" {
		t.Errorf("destination = %q", resp.Plan.DestinationName)
	}
	if len(resp.Plan.Route) != 1 {
		t.Fatalf("expected 1 route leg, got %d", len(resp.Plan.Route))
	}
	leg := resp.Plan.Route[0]
	if leg.DistanceKm < 9 || leg.DistanceKm > 12 {
		t.Errorf("Mathura->Vrindavan leg = %f km, expected ~10", leg.DistanceKm)
	}
	if leg.EstTravelMinutes <= 0 {
		t.Errorf("leg missing travel estimate")
	}
	if !strings.Contains(resp.MapsLinks.Directions, "Mathura") {
		t.Errorf("directions link = %q", resp.MapsLinks.Directions)
	}
	if resp.Raw != "" || resp.Candidate != "" {
		t.Errorf("debug intermediates leaked without debug flag")
	}
	if resp.SampleFallback {
		t.Errorf("unexpected sample fallback")
	}
}

func TestPlan_DebugExposesIntermediates(t *testing.T) {
	p := newTestPlanner(&stubGenerator{response: stubResponse})

	resp, err := p.Plan(context.Background(), trip.Request{Destination: "Mathura", Days: 1}, true)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if resp.Raw != stubResponse {
		t.Errorf("debug raw not preserved")
	}
	if !strings.HasPrefix(strings.TrimSpace(resp.Candidate), "{") {
		t.Errorf("debug candidate not preserved: %q", resp.Candidate)
	}
}

func TestPlan_EmptyDestinationRejected(t *testing.T) {
	p := newTestPlanner(&stubGenerator{response: stubResponse})
	_, err := p.Plan(context.Background(), trip.Request{Destination: "  "}, false)
	if !errors.Is(err, ErrBadRequest) {
		t.Errorf("expected ErrBadRequest, got %v", err)
	}
}

func TestPlan_CacheSkipsSecondGeneratorCall(t *testing.T) {
	gen := &stubGenerator{response: stubResponse}
	p := newTestPlanner(gen)
	req := trip.Request{Destination: "Mathura", Days: 2}

	if _, err := p.Plan(context.Background(), req, false); err != nil {
		t.Fatalf("first Plan: %v", err)
	}
	if _, err := p.Plan(context.Background(), req, false); err != nil {
		t.Fatalf("second Plan: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1 (cache hit)", gen.calls)
	}
}

func TestPlan_ProviderErrorFallsBackToSample(t *testing.T) {
	p := newTestPlanner(&stubGenerator{err: errors.New("quota exceeded")})

	resp, err := p.Plan(context.Background(), trip.Request{Destination: "Mathura", Days: 2}, false)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if !resp.SampleFallback {
		t.Errorf("expected sample fallback flag")
	}
	if resp.Plan.DestinationName == "" {
		t.Errorf("sample plan missing destination")
	}
}

func TestPlan_ExtractionFailureSurfacesRawText(t *testing.T) {
	p := newTestPlanner(&stubGenerator{response: "I cannot help with that."})

	_, err := p.Plan(context.Background(), trip.Request{Destination: "Mathura"}, false)
	var f *extract.Failure
	if !errors.As(err, &f) {
		t.Fatalf("expected *extract.Failure, got %v", err)
	}
	if f.Reason != extract.ReasonNoCandidate {
		t.Errorf("reason = %s", f.Reason)
	}
	if f.Raw != "I cannot help with that." {
		t.Errorf("raw text not carried through: %q", f.Raw)
	}
}
