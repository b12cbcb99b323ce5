package places

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"medi-assist/internal/providers/overpass"
	"medi-assist/internal/types"
)

type mockAmenitySearcher struct {
	response *overpass.APIResponse
	err      error

	gotAmenity string
	gotRadius  int
}

func (m *mockAmenitySearcher) SearchAmenity(_ context.Context, amenity string, radiusMeters int, _, _ float64) (*overpass.APIResponse, error) {
	m.gotAmenity = amenity
	m.gotRadius = radiusMeters
	return m.response, m.err
}

type fixedZoneClock struct {
	loc *time.Location
	err error
}

func (c fixedZoneClock) LocalTime(_, _ float64, t time.Time) (time.Time, error) {
	if c.err != nil {
		return time.Time{}, c.err
	}
	return t.In(c.loc), nil
}

var ist = time.FixedZone("IST", 5*60*60+30*60)

func TestOverpassSource_Search(t *testing.T) {
	searcher := &mockAmenitySearcher{
		response: &overpass.APIResponse{Elements: []overpass.Element{
			{Type: "node", ID: 1, Lat: 12.97, Lon: 77.60, Tags: map[string]string{
				"name": "Bowring Hospital", "addr:full": "Shivajinagar, Bengaluru", "opening_hours": "24/7",
			}},
			{Type: "way", ID: 2, Center: &overpass.Center{Lat: 12.95, Lon: 77.58}, Tags: map[string]string{
				"name": "Victoria Hospital", "addr:housenumber": "1", "addr:street": "Fort Road", "addr:city": "Bengaluru",
				"opening_hours": "Mo-Fr 09:00-17:00",
			}},
			{Type: "way", ID: 3, Tags: map[string]string{"name": "No Centre"}},
			{Type: "node", ID: 4, Lat: 12.99, Lon: 77.61},
			{Type: "node", ID: 5, Lat: 12.98, Lon: 77.62, Tags: map[string]string{
				"name": "Sunrise Clinic", "opening_hours": "sunrise-sunset",
			}},
		}},
	}

	source := NewOverpassSource(searcher, fixedZoneClock{loc: ist}, testLogger())
	// Saturday 11:30 IST
	source.now = func() time.Time { return time.Date(2026, 3, 7, 6, 0, 0, 0, time.UTC) }

	got, err := source.Search(context.Background(), types.NewCoords(12.9716, 77.5946), Query{})
	if err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}

	if searcher.gotAmenity != "hospital" || searcher.gotRadius != 5000 {
		t.Errorf("query = (%q, %d), want (hospital, 5000)", searcher.gotAmenity, searcher.gotRadius)
	}
	if len(got) != 4 {
		t.Fatalf("len(candidates) = %d, want 4 (way without centre skipped)", len(got))
	}

	tests := []struct {
		name    string
		c       types.Candidate
		wantLat float64
		address string
		isOpen  *bool
	}{
		{"Bowring Hospital", got[0], 12.97, "Shivajinagar, Bengaluru", types.Bool(true)},
		{"Victoria Hospital", got[1], 12.95, "1 Fort Road, Bengaluru", types.Bool(false)},
		{"", got[2], 12.99, "", nil},
		{"Sunrise Clinic", got[3], 12.98, "", nil},
	}
	for _, tt := range tests {
		if tt.c.Name != tt.name {
			t.Errorf("Name = %q, want %q", tt.c.Name, tt.name)
		}
		if tt.c.Coordinates == nil || tt.c.Coordinates.Latitude != tt.wantLat {
			t.Errorf("%q Coordinates = %v, want latitude %v", tt.name, tt.c.Coordinates, tt.wantLat)
		}
		if tt.c.Address != tt.address {
			t.Errorf("%q Address = %q, want %q", tt.name, tt.c.Address, tt.address)
		}
		switch {
		case tt.isOpen == nil && tt.c.IsOpen != nil:
			t.Errorf("%q IsOpen = %v, want nil", tt.name, *tt.c.IsOpen)
		case tt.isOpen != nil && (tt.c.IsOpen == nil || *tt.c.IsOpen != *tt.isOpen):
			t.Errorf("%q IsOpen = %v, want %v", tt.name, tt.c.IsOpen, *tt.isOpen)
		}
	}
}

func TestOverpassSource_Search_NoLocalTime(t *testing.T) {
	searcher := &mockAmenitySearcher{
		response: &overpass.APIResponse{Elements: []overpass.Element{
			{Type: "node", Lat: 1, Lon: 1, Tags: map[string]string{"name": "A", "opening_hours": "24/7"}},
		}},
	}

	tests := []struct {
		name  string
		clock LocalClock
	}{
		{"clock error", fixedZoneClock{err: errors.New("ocean")}},
		{"no clock", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewOverpassSource(searcher, tt.clock, testLogger()).
				Search(context.Background(), types.NewCoords(0, 0), Query{})
			if err != nil {
				t.Fatalf("Search() unexpected error = %v", err)
			}
			if got[0].IsOpen != nil {
				t.Errorf("IsOpen = %v, want nil when local time is unknown", *got[0].IsOpen)
			}
		})
	}
}

func TestOverpassSource_Search_Error(t *testing.T) {
	upstream := &overpass.StatusError{Code: 504}
	source := NewOverpassSource(&mockAmenitySearcher{err: upstream}, nil, testLogger())

	_, err := source.Search(context.Background(), types.NewCoords(0, 0), Query{Category: "clinic", RadiusMeters: 100})
	if !errors.Is(err, upstream) {
		t.Fatalf("Search() error = %v, want wrapped upstream error", err)
	}
	if !strings.Contains(err.Error(), "overpass search") {
		t.Errorf("Search() error = %v, want context prefix", err)
	}
}

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want string
	}{
		{"full wins", map[string]string{"addr:full": "12 MG Road", "addr:street": "Other"}, "12 MG Road"},
		{"street only", map[string]string{"addr:street": "MG Road"}, "MG Road"},
		{"number and street", map[string]string{"addr:housenumber": "12", "addr:street": "MG Road"}, "12 MG Road"},
		{"street and city", map[string]string{"addr:street": "MG Road", "addr:city": "Pune"}, "MG Road, Pune"},
		{"city without street", map[string]string{"addr:city": "Pune"}, ""},
		{"no tags", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAddress(tt.tags); got != tt.want {
				t.Errorf("formatAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}
