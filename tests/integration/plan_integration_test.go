// README: Live integration test; calls Gemini and runs the full extraction pipeline on its output.
package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"wander/internal/ai"
	"wander/internal/extract"
	"wander/internal/trip"
)

func TestGeminiPlanExtraction(t *testing.T) {
	loadDotEnv(t)

	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set, skipping live Gemini test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	provider, err := ai.NewGeminiProvider(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		t.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	req := trip.Request{Destination: "Mathura, India", Days: 2}
	raw, err := provider.GeneratePlan(ctx, req)
	if err != nil {
		t.Fatalf("generate plan: %v", err)
	}
	if strings.TrimSpace(raw) == "" {
		t.Fatal("expected non-empty model response")
	}
	t.Logf("model response length: %d", len(raw))

	result, err := extract.Extract(raw)
	if err != nil {
		t.Fatalf("extract from live response: %v\nraw:\n%s", err, raw)
	}

	plan := result.Plan
	if plan.DestinationName == "" {
		t.Fatal("expected destination_name in extracted plan")
	}
	if len(plan.Itinerary) == 0 {
		t.Fatal("expected non-empty itinerary in extracted plan")
	}
	if len(plan.VisitSequence) == 0 {
		t.Fatal("expected non-empty visit_sequence in extracted plan")
	}
	for _, d := range result.Diagnostics {
		t.Logf("diagnostic: %s", d)
	}

	legs := trip.ComputeRoute(plan.VisitSequence)
	t.Logf("route legs computed: %d", len(legs))
	for _, leg := range legs {
		if leg.DistanceKm < 0 {
			t.Fatalf("negative leg distance: %+v", leg)
		}
	}
}

func loadDotEnv(t *testing.T) {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			_ = godotenv.Load(candidate)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
