// Package places adapts place-search backends to ranking candidates and
// decorates them with caching and retries.
package places

import (
	"context"

	"medi-assist/internal/types"
)

const (
	DefaultCategory     = "hospital"
	DefaultRadiusMeters = 5000
)

// Query narrows a search around a centre point
type Query struct {
	Category     string
	RadiusMeters int
}

func (q Query) withDefaults() Query {
	if q.Category == "" {
		q.Category = DefaultCategory
	}
	if q.RadiusMeters <= 0 {
		q.RadiusMeters = DefaultRadiusMeters
	}
	return q
}

// PlaceSource returns unranked facility candidates near a point
type PlaceSource interface {
	Search(ctx context.Context, center types.Coords, q Query) ([]types.Candidate, error)
	// Name identifies the backend in logs, cache keys and responses
	Name() string
}
