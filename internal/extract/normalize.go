// README: Field-mapping boundary; turns raw parsed JSON into a typed plan plus diagnostics.
package extract

import (
	"fmt"
	"strconv"
	"strings"

	"wander/internal/trip"
)

// buildPlan validates the parsed document and maps it onto a typed plan.
// Missing optional fields default to empty containers; only the identifying
// fields (destination_name, itinerary, visit_sequence) being absent or of the
// wrong kind is fatal. Per-item defects are repaired or dropped locally and
// recorded as diagnostics.
func buildPlan(doc map[string]any) (*trip.Plan, []string, error) {
	var diags []string

	dest, ok := doc["destination_name"].(string)
	if !ok || strings.TrimSpace(dest) == "" {
		return nil, nil, fmt.Errorf("%w: destination_name", ErrMissingFields)
	}
	rawItinerary, ok := doc["itinerary"].([]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w: itinerary", ErrMissingFields)
	}
	rawVisits, ok := doc["visit_sequence"].([]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w: visit_sequence", ErrMissingFields)
	}

	plan := &trip.Plan{
		DestinationName: dest,
		MapsQuery:       asString(doc["maps_query"]),
		Itinerary:       mapItinerary(rawItinerary, &diags),
		VisitSequence:   mapVisitSequence(rawVisits, &diags),
		PopularDinner:   mapRecommendations(doc["popular_dinner_recommendations"]),
		PopularStays:    mapRecommendations(doc["popular_stays"]),
		Instructions:    mapInstructions(doc["travel_instructions"]),
	}
	return plan, diags, nil
}

func mapItinerary(items []any, diags *[]string) []trip.DayPlan {
	days := make([]trip.DayPlan, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			*diags = append(*diags, fmt.Sprintf("itinerary[%d]: not an object, dropped", i))
			continue
		}
		day := trip.DayPlan{
			DayNumber:  asInt(m["day_number"], i+1),
			Summary:    asString(m["summary"]),
			Activities: asStringList(m["activities"]),
		}
		cost, numeric := asNumber(m["approximate_cost"])
		switch {
		case !numeric && m["approximate_cost"] != nil:
			*diags = append(*diags, fmt.Sprintf("itinerary[%d]: non-numeric approximate_cost coerced to 0", i))
		case cost < 0:
			*diags = append(*diags, fmt.Sprintf("itinerary[%d]: negative approximate_cost coerced to 0", i))
			cost = 0
		}
		day.ApproximateCost = cost
		days = append(days, day)
	}
	return days
}

func mapVisitSequence(items []any, diags *[]string) []trip.Waypoint {
	seen := make(map[int]bool, len(items))
	visits := make([]trip.Waypoint, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			*diags = append(*diags, fmt.Sprintf("visit_sequence[%d]: not an object, dropped", i))
			continue
		}

		w := trip.Waypoint{
			Order:             asInt(m["order"], i+1),
			LocationName:      asString(m["location_name"]),
			SuggestedTime:     asString(m["suggested_time"]),
			EstimatedDuration: asString(m["estimated_duration"]),
			Note:              asString(m["note"]),
			NearbyFood:        mapRecommendations(m["nearby_food_recommendations"]),
		}

		lat, latOK := asNumber(m["latitude"])
		lng, lngOK := asNumber(m["longitude"])
		if latOK && lngOK {
			if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
				// Cannot be geometrically placed; the rest of the plan survives.
				*diags = append(*diags, fmt.Sprintf("visit_sequence[%d] (%s): coordinates out of range, dropped", i, w.LocationName))
				continue
			}
			w.Latitude, w.Longitude = &lat, &lng
		}

		if seen[w.Order] {
			*diags = append(*diags, fmt.Sprintf("visit_sequence[%d] (%s): duplicate order %d, first occurrence kept", i, w.LocationName, w.Order))
			continue
		}
		seen[w.Order] = true
		visits = append(visits, w)
	}
	sortWaypoints(visits)
	return visits
}

func sortWaypoints(ws []trip.Waypoint) {
	for i := 1; i < len(ws); i++ {
		w := ws[i]
		j := i - 1
		for j >= 0 && ws[j].Order > w.Order {
			ws[j+1] = ws[j]
			j--
		}
		ws[j+1] = w
	}
}

func mapRecommendations(v any) []trip.Recommendation {
	items, ok := v.([]any)
	if !ok {
		if m, ok := v.(map[string]any); ok {
			return []trip.Recommendation{mapRecommendation(m)}
		}
		return []trip.Recommendation{}
	}
	recs := make([]trip.Recommendation, 0, len(items))
	for _, item := range items {
		switch t := item.(type) {
		case map[string]any:
			recs = append(recs, mapRecommendation(t))
		case string:
			recs = append(recs, trip.Recommendation{Name: t})
		}
	}
	return recs
}

func mapRecommendation(m map[string]any) trip.Recommendation {
	rating, _ := asNumber(m["rating"])
	distance, _ := asNumber(m["distance_m"])
	return trip.Recommendation{
		Name:       asString(m["name"]),
		Reason:     asString(m["reason"]),
		Rating:     rating,
		DistanceM:  int(distance),
		PriceLevel: asString(m["price_level"]),
	}
}

// mapInstructions tolerates the shapes models actually produce: a list of
// objects, a list of strings, or one newline-separated string.
func mapInstructions(v any) []trip.Instruction {
	switch t := v.(type) {
	case []any:
		steps := make([]trip.Instruction, 0, len(t))
		for _, item := range t {
			switch s := item.(type) {
			case map[string]any:
				steps = append(steps, trip.Instruction{
					From:       asString(s["from"]),
					To:         asString(s["to"]),
					Transport:  asString(s["transport"]),
					ApproxTime: asString(s["approx_time"]),
					Notes:      asString(s["notes"]),
				})
			case string:
				steps = append(steps, trip.Instruction{Notes: s})
			}
		}
		return steps
	case string:
		var steps []trip.Instruction
		for _, line := range strings.Split(t, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				steps = append(steps, trip.Instruction{Notes: line})
			}
		}
		if steps == nil {
			steps = []trip.Instruction{}
		}
		return steps
	default:
		return []trip.Instruction{}
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if s, ok := v.(string); ok && s != "" {
			return []string{s}
		}
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch t := item.(type) {
		case string:
			out = append(out, t)
		case map[string]any:
			if name := asString(t["name"]); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// asNumber accepts the numeric shapes encoding/json produces plus numeric
// strings ("500"). The second return reports whether the value was usable.
func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return n, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asInt(v any, fallback int) int {
	if n, ok := asNumber(v); ok {
		return int(n)
	}
	return fallback
}
