package hospitals

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"medi-assist/internal/places"
	"medi-assist/internal/providers/openstreetmap"
	"medi-assist/internal/ranking"
	"medi-assist/internal/types"
)

var (
	ErrInvalidLatitude  = types.ErrInvalidLatitude
	ErrInvalidLongitude = types.ErrInvalidLongitude
	// ErrPlaceSearch wraps any failure of the upstream place source
	ErrPlaceSearch = errors.New("place search failed")
)

// NearbyHospitals is the ranked result of a nearby search
type NearbyHospitals struct {
	Origin types.Coords `json:"origin"`
	// Area labels the search centre when reverse geocoding succeeded
	Area      *types.LocationInfo `json:"area,omitempty"`
	Source    string              `json:"source" example:"overpass"`
	Hospitals []types.Facility    `json:"hospitals"`
	// OpenStatusAdvisory is always true: open status is best effort
	OpenStatusAdvisory bool `json:"openStatusAdvisory" example:"true"`
}

// Service finds facilities near a coordinate
type Service interface {
	FindNearby(ctx context.Context, latitude, longitude float64) (*NearbyHospitals, error)
}

// ReverseGeocodeProvider defines the interface for location label providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// Options tunes the search and ranking
type Options struct {
	Query    places.Query
	Limit    int
	OpenOnly bool
}

type hospitalService struct {
	source   places.PlaceSource
	geocoder ReverseGeocodeProvider
	opts     Options
	logger   *slog.Logger
}

// NewService creates a hospital service without area labelling
func NewService(source places.PlaceSource, opts Options, logger *slog.Logger) Service {
	return NewServiceWithProviders(source, nil, opts, logger)
}

// NewServiceWithProviders creates a hospital service that also reverse
// geocodes the search centre. geocoder may be nil.
func NewServiceWithProviders(
	source places.PlaceSource,
	geocoder ReverseGeocodeProvider,
	opts Options,
	logger *slog.Logger,
) Service {
	return &hospitalService{
		source:   source,
		geocoder: geocoder,
		opts:     opts,
		logger:   logger.With("component", "hospitals"),
	}
}

// FindNearby searches the place source and reverse geocodes in parallel,
// then ranks the candidates
func (s *hospitalService) FindNearby(ctx context.Context, latitude, longitude float64) (*NearbyHospitals, error) {
	center := types.NewCoords(latitude, longitude)
	if err := center.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	lookupCtx, cancelLookup := context.WithCancel(ctx)
	defer cancelLookup()

	var (
		wg         sync.WaitGroup
		candidates []types.Candidate
		lookupResp *openstreetmap.LookupAPIResponse
		searchErr  error
		lookupErr  error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		candidates, searchErr = s.source.Search(ctx, center, s.opts.Query)
		if searchErr != nil {
			// the label is useless without results
			cancelLookup()
		}
	}()

	if s.geocoder != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lookupResp, lookupErr = s.geocoder.Lookup(lookupCtx, latitude, longitude)
		}()
	}

	wg.Wait()

	if searchErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlaceSearch, searchErr)
	}

	var area *types.LocationInfo
	if lookupErr != nil {
		s.logger.Warn("reverse geocoding failed, omitting area", "error", lookupErr)
	} else if lookupResp != nil {
		area = translateLocationInfo(lookupResp)
	}

	ranked, err := ranking.Rank(center, candidates, ranking.Options{
		Limit:    s.opts.Limit,
		OpenOnly: s.opts.OpenOnly,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ranked nearby hospitals",
		"source", s.source.Name(),
		"candidates", len(candidates),
		"returned", len(ranked),
		"duration", time.Since(start),
	)

	return &NearbyHospitals{
		Origin:             center,
		Area:               area,
		Source:             s.source.Name(),
		Hospitals:          ranked,
		OpenStatusAdvisory: true,
	}, nil
}

// translateLocationInfo converts a Nominatim reverse lookup to a LocationInfo
func translateLocationInfo(resp *openstreetmap.LookupAPIResponse) *types.LocationInfo {
	name := resp.Address.Locality()
	if name == "" {
		name = resp.Name
	}
	if name == "" {
		name = resp.DisplayName
	}

	return &types.LocationInfo{
		Name:        name,
		County:      resp.Address.County,
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
	}
}
