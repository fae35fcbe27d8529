package maps

import (
	"strings"
	"testing"
)

func TestBuildLinks_NamedDestination(t *testing.T) {
	links := BuildLinks("Mathura,India", "Mathura, India", "Delhi")

	if !strings.HasPrefix(links.Directions, "https://www.google.com/maps/dir/?") {
		t.Errorf("directions = %q", links.Directions)
	}
	if !strings.Contains(links.Directions, "destination=Mathura%2CIndia") {
		t.Errorf("directions missing destination: %q", links.Directions)
	}
	if !strings.Contains(links.Directions, "origin=Delhi") {
		t.Errorf("directions missing origin: %q", links.Directions)
	}
	if !strings.Contains(links.Directions, "travelmode=driving") {
		t.Errorf("directions missing travelmode: %q", links.Directions)
	}
	if !strings.HasPrefix(links.Search, "https://www.google.com/maps/search/?") {
		t.Errorf("search = %q", links.Search)
	}
	if links.Embed != links.Search {
		t.Errorf("embed should mirror search")
	}
}

func TestBuildLinks_CoordinatePairPassthrough(t *testing.T) {
	links := BuildLinks("27.4921, 77.6745", "", "")
	if !strings.Contains(links.Directions, "destination=27.4921,77.6745") {
		t.Errorf("coordinate pair not passed through raw: %q", links.Directions)
	}
	if strings.Contains(links.Directions, "%2C") {
		t.Errorf("coordinate pair comma was encoded: %q", links.Directions)
	}
	if !strings.Contains(links.Search, "query=27.4921,77.6745") {
		t.Errorf("search query not passed through raw: %q", links.Search)
	}
}

func TestBuildLinks_NoOrigin(t *testing.T) {
	links := BuildLinks("Paris,France", "Paris, France", "")
	if strings.Contains(links.Directions, "origin=") {
		t.Errorf("unexpected origin param: %q", links.Directions)
	}
}

func TestBuildLinks_Empty(t *testing.T) {
	links := BuildLinks("", "", "")
	if links.Directions != "" || links.Search != "" || links.Embed != "" {
		t.Errorf("expected empty links, got %+v", links)
	}
}

func TestQueryValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"27.5, 77.6", "27.5,77.6"},
		{"-12.1,44.9", "-12.1,44.9"},
		{"Mathura, India", "Mathura%2C+India"},
	}
	for _, tt := range tests {
		if got := queryValue(tt.in); got != tt.want {
			t.Errorf("queryValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
