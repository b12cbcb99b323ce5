package ranking

import (
	"sort"
	"strings"

	"medi-assist/internal/types"
)

const (
	// DefaultLimit is the number of facilities returned when no limit is given
	DefaultLimit = 5

	UnknownName    = "Unknown Hospital"
	UnknownAddress = "Address not available"
)

// Options controls a single ranking pass
type Options struct {
	// Limit caps the result length. Values <= 0 mean DefaultLimit.
	Limit int
	// OpenOnly drops facilities whose status is known to be closed.
	// Facilities without status are assumed open and always kept.
	OpenOnly bool
}

type scored struct {
	facility types.Facility
	km       float64
}

// Rank orders candidates by distance from user, nearest first, and returns at
// most opts.Limit facilities. Candidates with coordinates are measured with
// Haversine; candidates without coordinates fall back to their pre-supplied
// distance. Malformed candidates are skipped. The sort is stable, so equal
// distances keep their input order.
//
// The only error is an invalid user coordinate. An empty candidate list yields
// an empty result.
func Rank(user types.Coords, candidates []types.Candidate, opts Options) ([]types.Facility, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		s, ok := score(user, c)
		if !ok {
			continue
		}
		if opts.OpenOnly && s.facility.OpenStatusKnown && !s.facility.IsOpen {
			continue
		}
		ranked = append(ranked, s)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].km < ranked[j].km
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]types.Facility, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.facility)
	}
	return out, nil
}

// score computes the numeric distance and display fields for one candidate.
// It reports false when the candidate has neither usable coordinates nor a
// parseable distance.
func score(user types.Coords, c types.Candidate) (scored, bool) {
	f := types.Facility{
		Name:    strings.TrimSpace(c.Name),
		Address: strings.TrimSpace(c.Address),
		IsOpen:  true,
	}
	if f.Name == "" {
		f.Name = UnknownName
	}
	if f.Address == "" {
		f.Address = UnknownAddress
	}
	if c.IsOpen != nil {
		f.IsOpen = *c.IsOpen
		f.OpenStatusKnown = true
	}

	if c.Coordinates != nil && c.Coordinates.Validate() == nil {
		km := Haversine(user, *c.Coordinates)
		coords := *c.Coordinates
		f.Coordinates = &coords
		f.DistanceKm = km
		f.Distance = FormatDistance(km)
		return scored{facility: f, km: km}, true
	}

	if c.Distance == "" {
		return scored{}, false
	}
	km, err := ParseDistance(c.Distance)
	if err != nil {
		return scored{}, false
	}
	f.DistanceKm = km
	f.Distance = strings.TrimSpace(c.Distance)
	return scored{facility: f, km: km}, true
}
