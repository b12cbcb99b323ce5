package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medi-assist/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{GinMode: "test"},
		Hospitals: config.HospitalsConfig{Source: "places", Category: "hospital", RadiusMeters: 5000, Limit: 5, OpenOnly: true},
		Cache:     config.CacheConfig{Backend: "memory", TTL: time.Minute, PurgeInterval: time.Minute},
		Retry:     config.RetryConfig{MaxAttempts: 1},
	}
}

func TestNewApp_CatalogSource(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := NewApp(context.Background(), testConfig(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, app.Close()) })

	rec := serve(app, http.MethodGet, "/api/v1/hospitals/nearby?latitude=12.97&longitude=77.59", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	// the catalog's closed dental clinic is filtered and the rest sorted by supplied distance
	assert.Contains(t, rec.Body.String(), `"name":"Apollo Clinic"`)
	assert.NotContains(t, rec.Body.String(), "Dental Care Center")

	rec = serve(app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","placeSource":"places","cache":"memory","symptomAnalysis":false}`, rec.Body.String())

	// no API key configured
	rec = serve(app, http.MethodPost, "/api/v1/symptoms/analyze", `{"symptoms":"runny nose and sneezing","language":"english"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func fakeOverpass(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version": 0.6, "elements": [
			{"type": "node", "id": 1, "lat": 12.9592, "lon": 77.5755, "tags": {"name": "Victoria Hospital", "amenity": "hospital"}},
			{"type": "way", "id": 2, "center": {"lat": 12.9833, "lon": 77.6050}, "tags": {"name": "Bowring Hospital", "amenity": "hospital"}}
		]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewApp_DefaultSourceIsOverpass(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "overpass", cfg.Hospitals.Source)

	cfg.Server.GinMode = "test"
	cfg.Overpass.URL = fakeOverpass(t).URL

	app, err := NewApp(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, app.Close()) })

	rec := serve(app, http.MethodGet, "/api/v1/hospitals/nearby?latitude=12.97&longitude=77.59", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"name":"Victoria Hospital"`)
	assert.NotContains(t, rec.Body.String(), "Apollo Clinic")
}

func TestNewApp_UnknownSource(t *testing.T) {
	cfg := testConfig()
	cfg.Hospitals.Source = "yellow-pages"

	_, err := NewApp(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestNewApp_RedisCache(t *testing.T) {
	srv := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Hospitals.Source = "overpass"
	cfg.Overpass = config.OverpassConfig{URL: fakeOverpass(t).URL, Timeout: 5 * time.Second}
	cfg.Cache.Backend = "redis"
	cfg.Cache.RedisAddr = srv.Addr()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := NewApp(context.Background(), cfg, logger)
	require.NoError(t, err)

	rec := serve(app, http.MethodGet, "/api/v1/hospitals/nearby?latitude=12.97&longitude=77.59", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, srv.Keys(), "search should be cached in Redis")

	require.NoError(t, app.Close())
}

func TestNewApp_RedisUnavailable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	cfg := testConfig()
	cfg.Cache.Backend = "redis"
	cfg.Cache.RedisAddr = addr

	_, err := NewApp(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
