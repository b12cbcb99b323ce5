package places

import (
	"context"
	"fmt"

	placesapi "medi-assist/internal/providers/places"
	"medi-assist/internal/types"
)

// PlacesFinder is a places-search API that annotates results with distance and open status
type PlacesFinder interface {
	FindPlaces(ctx context.Context, latitude, longitude float64, query string) ([]placesapi.Result, error)
}

// AnnotatedSource maps pre-annotated places-search results to candidates.
// Candidates carry the supplied distance and no coordinates.
type AnnotatedSource struct {
	finder PlacesFinder
}

func NewAnnotatedSource(finder PlacesFinder) *AnnotatedSource {
	return &AnnotatedSource{finder: finder}
}

func (s *AnnotatedSource) Name() string {
	return "places"
}

func (s *AnnotatedSource) Search(ctx context.Context, center types.Coords, q Query) ([]types.Candidate, error) {
	q = q.withDefaults()

	results, err := s.finder.FindPlaces(ctx, center.Latitude, center.Longitude, q.Category)
	if err != nil {
		return nil, fmt.Errorf("places search: %w", err)
	}

	candidates := make([]types.Candidate, 0, len(results))
	for _, r := range results {
		c := types.Candidate{
			Name:     r.Name,
			Address:  r.Address,
			Distance: r.Distance,
		}
		if r.OpeningHours != nil && r.OpeningHours.OpenNow != nil {
			c.IsOpen = types.Bool(*r.OpeningHours.OpenNow)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
