// README: Best-effort plan supplements when the model returns half a plan.
package planner

import (
	"fmt"

	"wander/internal/trip"
)

// MealPick is one food suggestion tied to a visit.
type MealPick struct {
	VisitLocation string  `json:"visit_location"`
	Name          string  `json:"name"`
	Rating        float64 `json:"rating,omitempty"`
	DistanceM     int     `json:"distance_m,omitempty"`
	PriceLevel    string  `json:"price_level,omitempty"`
	Reason        string  `json:"reason,omitempty"`
}

// DayMeals groups meal picks by itinerary day.
type DayMeals struct {
	DayNumber int        `json:"day_number"`
	Meals     []MealPick `json:"meals"`
}

// requestedDays resolves how many days the plan should span: the user's
// request wins, then the model's itinerary length, then one.
func requestedDays(req trip.Request, plan *trip.Plan) int {
	if req.Days >= 1 {
		return req.Days
	}
	if n := len(plan.Itinerary); n >= 1 {
		return n
	}
	return 1
}

// deriveVisitSequence builds a visit sequence from itinerary activities when
// the model omitted one. Derived waypoints carry no coordinates, so the route
// geometry simply skips them.
func deriveVisitSequence(plan *trip.Plan) {
	if len(plan.VisitSequence) > 0 || len(plan.Itinerary) == 0 {
		return
	}

	fallbackFood := plan.PopularDinner
	if len(fallbackFood) > 2 {
		fallbackFood = fallbackFood[:2]
	}

	order := 1
	for _, day := range plan.Itinerary {
		for _, activity := range day.Activities {
			plan.VisitSequence = append(plan.VisitSequence, trip.Waypoint{
				Order:        order,
				LocationName: activity,
				NearbyFood:   fallbackFood,
			})
			order++
		}
	}
}

// deriveItinerary distributes visits across the requested days when the model
// returned a visit sequence but no itinerary.
func deriveItinerary(plan *trip.Plan, days int) {
	if len(plan.Itinerary) > 0 || len(plan.VisitSequence) == 0 {
		return
	}

	buckets := bucketVisits(plan.VisitSequence, days)
	for i := 0; i < days; i++ {
		day := trip.DayPlan{DayNumber: i + 1, Activities: []string{}}
		for _, w := range buckets[i] {
			day.Activities = append(day.Activities, w.LocationName)
		}
		if len(day.Activities) == 0 {
			day.Summary = "Free / explore"
			day.Activities = []string{"Free time / local exploration"}
		} else {
			day.Summary = fmt.Sprintf("Visit %d site(s)", len(day.Activities))
		}
		plan.Itinerary = append(plan.Itinerary, day)
	}
}

// dailyMeals picks up to three food suggestions per visit, grouped by day.
// Visits without their own recommendations borrow the plan's popular dinner
// picks.
func dailyMeals(plan *trip.Plan, days int) []DayMeals {
	buckets := bucketVisits(plan.VisitSequence, days)

	fallback := plan.PopularDinner
	if len(fallback) > 2 {
		fallback = fallback[:2]
	}

	out := make([]DayMeals, days)
	for i := 0; i < days; i++ {
		dm := DayMeals{DayNumber: i + 1, Meals: []MealPick{}}
		for _, w := range buckets[i] {
			food := w.NearbyFood
			if len(food) == 0 {
				food = fallback
			}
			if len(food) > 3 {
				food = food[:3]
			}
			for _, f := range food {
				dm.Meals = append(dm.Meals, MealPick{
					VisitLocation: w.LocationName,
					Name:          f.Name,
					Rating:        f.Rating,
					DistanceM:     f.DistanceM,
					PriceLevel:    f.PriceLevel,
					Reason:        f.Reason,
				})
			}
		}
		out[i] = dm
	}
	return out
}

// bucketVisits splits the visit sequence into contiguous per-day groups.
func bucketVisits(visits []trip.Waypoint, days int) [][]trip.Waypoint {
	if days < 1 {
		days = 1
	}
	buckets := make([][]trip.Waypoint, days)
	if len(visits) == 0 {
		return buckets
	}

	perDay := (len(visits) + days - 1) / days
	if perDay < 1 {
		perDay = 1
	}
	for i, w := range visits {
		di := i / perDay
		if di >= days {
			di = days - 1
		}
		buckets[di] = append(buckets[di], w)
	}
	return buckets
}
