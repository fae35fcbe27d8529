// README: Google Maps URL builders for the rendering collaborator.
package maps

import (
	"net/url"
	"regexp"
	"strings"
)

// Links carries the map URLs handed to the rendering collaborator alongside
// the plan.
type Links struct {
	Directions string `json:"directions,omitempty"`
	Search     string `json:"search,omitempty"`
	Embed      string `json:"embed,omitempty"`
}

var coordinatePairRe = regexp.MustCompile(`^\s*-?\d+(\.\d+)?\s*,\s*-?\d+(\.\d+)?\s*$`)

// queryValue encodes a destination into a maps query parameter.
// A bare "lat,lng" pair keeps its comma and digits untouched (whitespace
// stripped) so it lands in the URL exactly as the model emitted it; anything
// else is percent-encoded.
func queryValue(q string) string {
	q = strings.TrimSpace(q)
	if coordinatePairRe.MatchString(q) {
		return strings.ReplaceAll(q, " ", "")
	}
	return url.QueryEscape(q)
}

// BuildLinks produces directions and search URLs for a destination.
// searchQuery is the model's maps_query (preferred) or the destination name;
// origin is optional. The destination/query value is appended after
// url.Values encoding so coordinate pairs pass through raw.
func BuildLinks(searchQuery, destinationName, origin string) Links {
	var links Links

	directionsTarget := firstNonEmpty(searchQuery, destinationName)
	if directionsTarget != "" {
		params := url.Values{}
		params.Set("api", "1")
		if origin != "" {
			params.Set("origin", origin)
		}
		params.Set("travelmode", "driving")
		links.Directions = "https://www.google.com/maps/dir/?" + params.Encode() +
			"&destination=" + queryValue(directionsTarget)
	}

	searchTarget := firstNonEmpty(destinationName, searchQuery)
	if searchTarget != "" {
		links.Search = "https://www.google.com/maps/search/?api=1&query=" + queryValue(searchTarget)
		links.Embed = links.Search
	}

	return links
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
