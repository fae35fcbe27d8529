// README: Provider contract for the generative-AI plan collaborator.
package ai

import (
	"context"

	"wander/internal/trip"
)

// PlanGenerator defines the contract for the AI-call collaborator.
// Implementations return the model's raw text blob; turning that blob into a
// structured plan is the extractor's job, so providers can be swapped without
// touching the recovery pipeline.
type PlanGenerator interface {
	// GeneratePlan sends a structured prompt built from the request and
	// returns the model's free-form response text.
	GeneratePlan(ctx context.Context, req trip.Request) (string, error)
}
