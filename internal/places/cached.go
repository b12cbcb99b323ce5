package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"medi-assist/internal/cache"
	"medi-assist/internal/types"
)

// CachedSource memoizes searches for nearby centre points. Coordinates are
// quantized to 0.01 degrees (about 1.1 km) so neighbouring requests share
// an entry. Results carrying a distance without coordinates are measured
// from the exact centre, so they are not stored. Cache failures are logged
// and never fail a search.
type CachedSource struct {
	next   PlaceSource
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedSource(next PlaceSource, c cache.Cache, ttl time.Duration, logger *slog.Logger) *CachedSource {
	return &CachedSource{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger.With("component", "place-cache"),
	}
}

func (s *CachedSource) Name() string {
	return s.next.Name()
}

func (s *CachedSource) Search(ctx context.Context, center types.Coords, q Query) ([]types.Candidate, error) {
	q = q.withDefaults()
	key := cacheKey(s.next.Name(), center, q)

	data, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached []types.Candidate
		jsonErr := json.Unmarshal(data, &cached)
		if jsonErr == nil {
			s.logger.Debug("cache hit", "key", key, "candidates", len(cached))
			return cached, nil
		}
		s.logger.Warn("discarding undecodable cache entry", "key", key, "error", jsonErr)
	case !errors.Is(err, cache.ErrMiss):
		s.logger.Warn("cache read failed", "key", key, "error", err)
	}

	candidates, err := s.next.Search(ctx, center, q)
	if err != nil {
		return nil, err
	}

	if !positionIndependent(candidates) {
		s.logger.Debug("not caching distance-only candidates", "key", key)
		return candidates, nil
	}

	encoded, err := json.Marshal(candidates)
	if err != nil {
		s.logger.Warn("failed to encode candidates for cache", "error", err)
		return candidates, nil
	}
	if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
		s.logger.Warn("cache write failed", "key", key, "error", err)
	}

	return candidates, nil
}

// positionIndependent reports whether every candidate carries coordinates,
// so ranking can recompute distances for any caller in the cell.
func positionIndependent(candidates []types.Candidate) bool {
	for _, c := range candidates {
		if c.Coordinates == nil {
			return false
		}
	}
	return true
}

func cacheKey(source string, center types.Coords, q Query) string {
	return fmt.Sprintf("places:%s:%s:%d:%.2f:%.2f",
		source, q.Category, q.RadiusMeters, quantize(center.Latitude), quantize(center.Longitude))
}

func quantize(deg float64) float64 {
	r := math.Round(deg*100) / 100
	if r == 0 {
		return 0 // avoid "-0.00"
	}
	return r
}
