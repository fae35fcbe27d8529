// README: Gemini-backed plan generator.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"wander/internal/trip"
)

// GeminiProvider implements PlanGenerator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		// Gemini 2.0 Flash for low latency and cost efficiency.
		modelName = "gemini-2.0-flash"
	}
	model := client.GenerativeModel(modelName)

	// The response stays free text on purpose: the prompt asks for marker-wrapped
	// JSON and the extractor handles whatever the model actually emits.
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GeneratePlan sends the planning prompt and returns the raw response text.
// No parsing happens here; even a malformed response is handed back verbatim
// so the extractor (and its failure path) can see the original blob.
func (p *GeminiProvider) GeneratePlan(ctx context.Context, req trip.Request) (string, error) {
	prompt := BuildPrompt(req)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	return responseText.String(), nil
}
