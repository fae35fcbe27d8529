// README: Trip plan model; the structured form of a generated itinerary.
package trip

// Request is the validated planning input. It is immutable once handed to the
// plan generator; the core pipeline only reads it to build the prompt.
type Request struct {
	Destination string   `json:"destination"`
	Origin      string   `json:"origin,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
	Days        int      `json:"days"`
	Budget      string   `json:"budget,omitempty"`
}

// DayPlan is one day of the itinerary.
type DayPlan struct {
	DayNumber       int      `json:"day_number"`
	Summary         string   `json:"summary"`
	Activities      []string `json:"activities"`
	ApproximateCost float64  `json:"approximate_cost"`
}

// Recommendation is a free-form food/stay suggestion attached to a plan or a
// waypoint.
type Recommendation struct {
	Name       string  `json:"name"`
	Reason     string  `json:"reason,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	DistanceM  int     `json:"distance_m,omitempty"`
	PriceLevel string  `json:"price_level,omitempty"`
}

// Waypoint is a single geographic stop in the visiting order.
// Latitude/Longitude are pointers because the model is allowed to omit
// coordinates; a waypoint without coordinates is kept in the plan but skipped
// by the route geometry.
type Waypoint struct {
	Order             int              `json:"order"`
	LocationName      string           `json:"location_name"`
	SuggestedTime     string           `json:"suggested_time,omitempty"`
	EstimatedDuration string           `json:"estimated_duration,omitempty"`
	Note              string           `json:"note,omitempty"`
	Latitude          *float64         `json:"latitude"`
	Longitude         *float64         `json:"longitude"`
	NearbyFood        []Recommendation `json:"nearby_food_recommendations"`
}

// HasCoordinates reports whether the waypoint can be geometrically placed.
func (w Waypoint) HasCoordinates() bool {
	return w.Latitude != nil && w.Longitude != nil
}

// Instruction is one step of the travel directions to the destination.
type Instruction struct {
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Transport  string `json:"transport,omitempty"`
	ApproxTime string `json:"approx_time,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Leg is a derived route segment between two consecutive waypoints.
// It is computed, never parsed from model output.
type Leg struct {
	From             string  `json:"from_waypoint"`
	To               string  `json:"to_waypoint"`
	DistanceKm       float64 `json:"distance_km"`
	EstTravelMinutes float64 `json:"est_travel_minutes,omitempty"`
}

// Plan is the fully structured, validated representation of an itinerary.
// Route is appended by the geometry engine after extraction.
type Plan struct {
	DestinationName string           `json:"destination_name"`
	MapsQuery       string           `json:"maps_query"`
	Itinerary       []DayPlan        `json:"itinerary"`
	VisitSequence   []Waypoint       `json:"visit_sequence"`
	PopularDinner   []Recommendation `json:"popular_dinner_recommendations"`
	PopularStays    []Recommendation `json:"popular_stays"`
	Instructions    []Instruction    `json:"travel_instructions"`
	Route           []Leg            `json:"route,omitempty"`
}
