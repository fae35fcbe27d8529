// README: Route geometry; great-circle distances over the stated visiting order.
package trip

import (
	"math"
	"time"
)

const earthRadiusKm = 6371.0

// averageCitySpeedKmh is the assumed speed for the naive per-leg travel
// estimate used when no directions client is configured.
const averageCitySpeedKmh = 30.0

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// sortByOrder performs an insertion sort (fine for small N) on any slice
// where each element exposes an ordering key via the accessor function.
func sortByOrder[T any](items []T, key func(T) int) {
	for i := 1; i < len(items); i++ {
		it := items[i]
		j := i - 1
		for j >= 0 && key(items[j]) > key(it) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = it
	}
}

// ComputeRoute derives the leg sequence implied by the waypoints' stated
// order. The order field is authoritative; no spatial reordering is attempted
// (the model may deliberately sequence stops by time of day rather than
// proximity). Waypoints without coordinates are skipped. Fewer than two
// placeable waypoints yields an empty slice, never an error.
func ComputeRoute(waypoints []Waypoint) []Leg {
	placeable := make([]Waypoint, 0, len(waypoints))
	for _, w := range waypoints {
		if w.HasCoordinates() {
			placeable = append(placeable, w)
		}
	}
	if len(placeable) < 2 {
		return []Leg{}
	}

	sortByOrder(placeable, func(w Waypoint) int { return w.Order })

	legs := make([]Leg, 0, len(placeable)-1)
	for i := 1; i < len(placeable); i++ {
		from, to := placeable[i-1], placeable[i]
		km := haversineKm(*from.Latitude, *from.Longitude, *to.Latitude, *to.Longitude)
		legs = append(legs, Leg{
			From:       from.LocationName,
			To:         to.LocationName,
			DistanceKm: km,
		})
	}
	return legs
}

// EstimateLegDuration converts a leg distance into a rough travel time at
// urban driving speed.
func EstimateLegDuration(distanceKm float64) time.Duration {
	hours := distanceKm / averageCitySpeedKmh
	return time.Duration(hours * float64(time.Hour))
}
