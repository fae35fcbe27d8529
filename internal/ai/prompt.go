// README: Prompt construction for the travel-plan request.
package ai

import (
	"fmt"
	"strings"

	"wander/internal/extract"
	"wander/internal/trip"
)

// schemaExample shows the model the exact shape we expect back. Keeping it as
// a literal blob rather than marshalling structs makes the prompt stable and
// reviewable.
const schemaExample = `{
  "destination_name": "Place, Country",
  "maps_query": "Place,Country",
  "itinerary": [
    {"day_number": 1, "summary": "Sample day", "activities": ["Activity 1", "Activity 2"], "approximate_cost": 100}
  ],
  "visit_sequence": [
    {"order": 1, "location_name": "Activity 1", "suggested_time": "Morning", "estimated_duration": "1 hour",
     "note": "Tip", "latitude": null, "longitude": null,
     "nearby_food_recommendations": [{"name": "Sample Eatery", "rating": 4.2, "distance_m": 200, "price_level": "$", "reason": "Local favorite"}]}
  ],
  "popular_dinner_recommendations": [{"name": "Sample Eatery", "reason": "Tasty local food", "rating": 4.2, "price_level": "$"}],
  "popular_stays": [{"name": "Sample Hotel", "reason": "Convenient", "rating": 4.0, "price_level": "$$"}],
  "travel_instructions": [{"from": "origin", "to": "destination", "transport": "train/taxi", "approx_time": "Varies", "notes": "Short note"}]
}`

// BuildPrompt renders the planning request into the strict prompt the
// extractor's primary (marker-delimited) strategy depends on.
func BuildPrompt(req trip.Request) string {
	origin := req.Origin
	if origin == "" {
		origin = "not provided"
	}
	days := req.Days
	if days < 1 {
		days = 1
	}

	return fmt.Sprintf(`You are a travel planner assistant. Return ONLY a JSON object between the markers below:

%s
<JSON>
%s

Inputs:
- destination: %q
- preferences: %q
- days: %d
- budget: %q
- origin: %q

Schema example:
%s

Requirements:
- Return exactly one JSON object between the markers. Do not include any other text.
- Ensure visit_sequence is an ordered array with numeric 'order' fields and real latitude/longitude where known.
- For each visit_sequence item include at least one nearby_food_recommendation if possible.
- Use plain JSON (no markdown, no code fences). If you must include fences, they will be stripped.
`,
		extract.JSONStartMarker, extract.JSONEndMarker,
		req.Destination, strings.Join(req.Preferences, ", "),
		days, req.Budget, origin, schemaExample)
}
