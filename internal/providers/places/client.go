package places

import (
	"context"
	"log/slog"
)

// DefaultCatalog is the fixed result set served for every query. Distances
// are pre-computed by the catalog and do not depend on the caller's position.
var DefaultCatalog = []Result{
	{Name: "City Hospital", Address: "123 Health St, Downtown", OpeningHours: openNow(true), Distance: "2.3 km"},
	{Name: "Apollo Clinic", Address: "456 Wellness Ave, Uptown", OpeningHours: openNow(true), Distance: "1.5 km"},
	{Name: "Community Medical Center", Address: "789 Care Rd, Suburbia", OpeningHours: openNow(true), Distance: "5.1 km"},
	{Name: "Dental Care Center", Address: "101 Tooth Ln, Molarville", OpeningHours: openNow(false), Distance: "3.5 km"},
}

// CatalogClient answers places searches from a static catalog
type CatalogClient struct {
	catalog []Result
	logger  *slog.Logger
}

// NewCatalogClient serves DefaultCatalog
func NewCatalogClient(logger *slog.Logger) *CatalogClient {
	return NewCatalogClientWithResults(DefaultCatalog, logger)
}

// NewCatalogClientWithResults serves a caller-supplied catalog
func NewCatalogClientWithResults(results []Result, logger *slog.Logger) *CatalogClient {
	return &CatalogClient{
		catalog: results,
		logger:  logger.With("component", "places-catalog"),
	}
}

// FindPlaces returns a copy of the catalog. The query is logged but not used for filtering.
func (c *CatalogClient) FindPlaces(ctx context.Context, latitude, longitude float64, query string) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.logger.Debug("finding places", "query", query, "latitude", latitude, "longitude", longitude)

	out := make([]Result, len(c.catalog))
	copy(out, c.catalog)
	return out, nil
}
