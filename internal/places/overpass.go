package places

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"medi-assist/internal/openhours"
	"medi-assist/internal/providers/overpass"
	"medi-assist/internal/types"
)

// AmenitySearcher queries OSM map data by amenity tag
type AmenitySearcher interface {
	SearchAmenity(ctx context.Context, amenity string, radiusMeters int, latitude, longitude float64) (*overpass.APIResponse, error)
}

// LocalClock converts an instant to wall-clock time at a coordinate
type LocalClock interface {
	LocalTime(latitude, longitude float64, t time.Time) (time.Time, error)
}

// OverpassSource reads facilities from OpenStreetMap. Records carry raw
// coordinates; open status comes from the opening_hours tag when present.
type OverpassSource struct {
	client AmenitySearcher
	clock  LocalClock
	now    func() time.Time
	logger *slog.Logger
}

// NewOverpassSource creates a source. clock may be nil, in which case
// opening hours are never evaluated.
func NewOverpassSource(client AmenitySearcher, clock LocalClock, logger *slog.Logger) *OverpassSource {
	return &OverpassSource{
		client: client,
		clock:  clock,
		now:    time.Now,
		logger: logger.With("component", "overpass-source"),
	}
}

func (s *OverpassSource) Name() string {
	return "overpass"
}

func (s *OverpassSource) Search(ctx context.Context, center types.Coords, q Query) ([]types.Candidate, error) {
	q = q.withDefaults()

	resp, err := s.client.SearchAmenity(ctx, q.Category, q.RadiusMeters, center.Latitude, center.Longitude)
	if err != nil {
		return nil, fmt.Errorf("overpass search: %w", err)
	}

	now := s.now()
	candidates := make([]types.Candidate, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		lat, lon, ok := el.Position()
		if !ok {
			s.logger.Debug("skipping element without position", "type", el.Type, "id", el.ID)
			continue
		}
		coords := types.NewCoords(lat, lon)

		candidates = append(candidates, types.Candidate{
			Name:        el.Tags["name"],
			Address:     formatAddress(el.Tags),
			Coordinates: &coords,
			IsOpen:      s.openStatus(el.Tags["opening_hours"], coords, now),
		})
	}

	return candidates, nil
}

// openStatus returns nil when hours are absent, unsupported or the local
// time cannot be determined
func (s *OverpassSource) openStatus(hours string, at types.Coords, now time.Time) *bool {
	if hours == "" || s.clock == nil {
		return nil
	}

	local, err := s.clock.LocalTime(at.Latitude, at.Longitude, now)
	if err != nil {
		s.logger.Debug("no local time for facility", "error", err)
		return nil
	}

	open, known := openhours.Evaluate(hours, local)
	if !known {
		return nil
	}
	return types.Bool(open)
}

// formatAddress prefers addr:full, then builds "<housenumber> <street>, <city>"
func formatAddress(tags map[string]string) string {
	if full := strings.TrimSpace(tags["addr:full"]); full != "" {
		return full
	}

	street := strings.TrimSpace(tags["addr:street"])
	if street == "" {
		return ""
	}
	if number := strings.TrimSpace(tags["addr:housenumber"]); number != "" {
		street = number + " " + street
	}
	if city := strings.TrimSpace(tags["addr:city"]); city != "" {
		street += ", " + city
	}
	return street
}
