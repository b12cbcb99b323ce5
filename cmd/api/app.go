package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron/v2"

	"medi-assist/internal/cache"
	"medi-assist/internal/config"
	"medi-assist/internal/hospitals"
	"medi-assist/internal/llm"
	"medi-assist/internal/places"
	"medi-assist/internal/providers/openstreetmap"
	"medi-assist/internal/providers/overpass"
	placesapi "medi-assist/internal/providers/places"
	"medi-assist/internal/symptoms"
	"medi-assist/internal/timezone"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	hospitalService hospitals.Service
	symptomService  symptoms.Service

	placeSource   string
	llmConfigured bool

	// closers release resources in reverse order on shutdown
	closers []func() error
}

// NewApp creates a new application with injected dependencies
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{
		logger: logger,
		cfg:    cfg,
	}

	source, err := app.newPlaceSource(ctx)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	app.placeSource = source.Name()

	var geocoder hospitals.ReverseGeocodeProvider
	if cfg.Hospitals.ReverseGeocode {
		geocoder = openstreetmap.NewClient(cfg.Nominatim.URL, cfg.Nominatim.UserAgent, logger)
	}

	app.hospitalService = hospitals.NewServiceWithProviders(source, geocoder, hospitals.Options{
		Query: places.Query{
			Category:     cfg.Hospitals.Category,
			RadiusMeters: cfg.Hospitals.RadiusMeters,
		},
		Limit:    cfg.Hospitals.Limit,
		OpenOnly: cfg.Hospitals.OpenOnly,
	}, logger)
	app.symptomService = symptoms.NewService(app.newLLMClient(), logger)

	gin.SetMode(cfg.Server.GinMode)
	app.setupRouter()

	logger.Info("app initialized",
		"place_source", source.Name(),
		"cache", cfg.Cache.Backend,
		"reverse_geocode", cfg.Hospitals.ReverseGeocode,
	)
	return app, nil
}

// newAppWithServices wires an App around existing services
func newAppWithServices(cfg *config.Config, logger *slog.Logger, hospitalSvc hospitals.Service, symptomSvc symptoms.Service) *App {
	app := &App{
		logger:          logger,
		cfg:             cfg,
		hospitalService: hospitalSvc,
		symptomService:  symptomSvc,
	}
	app.setupRouter()
	return app
}

func (app *App) setupRouter() {
	app.router = gin.New()

	// Add middleware
	app.router.Use(gin.Recovery())
	app.router.Use(requestID())
	app.router.Use(requestLogger(app.logger))

	app.registerRoutes()
}

// Handler returns the HTTP handler for the API
func (app *App) Handler() http.Handler {
	return app.router
}

// Close stops background jobs and closes connections
func (app *App) Close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	app.closers = nil
	return errors.Join(errs...)
}

// newPlaceSource builds the configured backend and wraps it with retries and caching
func (app *App) newPlaceSource(ctx context.Context) (places.PlaceSource, error) {
	cfg := app.cfg

	var source places.PlaceSource
	switch strings.ToLower(cfg.Hospitals.Source) {
	case "overpass":
		var clock places.LocalClock
		tz, err := timezone.NewService()
		if err != nil {
			app.logger.Warn("timezone lookup unavailable, opening hours will not be evaluated", "error", err)
		} else {
			clock = tz
		}

		client := overpass.NewClient(cfg.Overpass.URL, cfg.Overpass.Timeout, app.logger)
		source = places.NewRetryingSource(
			places.NewOverpassSource(client, clock, app.logger),
			places.RetryPolicy{
				MaxAttempts:     cfg.Retry.MaxAttempts,
				InitialInterval: cfg.Retry.InitialInterval,
				MaxInterval:     cfg.Retry.MaxInterval,
				AttemptTimeout:  cfg.Retry.AttemptTimeout,
			},
			app.logger,
		)
	case "places":
		app.logger.Warn("using the fixed local catalog, distances do not depend on the caller's position")
		source = places.NewAnnotatedSource(placesapi.NewCatalogClient(app.logger))
	default:
		return nil, fmt.Errorf("unknown hospital source %q", cfg.Hospitals.Source)
	}

	c, err := app.newCache(ctx)
	if err != nil {
		return nil, err
	}
	if c != nil {
		source = places.NewCachedSource(source, c, cfg.Cache.TTL, app.logger)
	}
	return source, nil
}

// newCache returns nil when caching is disabled
func (app *App) newCache(ctx context.Context) (cache.Cache, error) {
	cfg := app.cfg.Cache

	switch strings.ToLower(cfg.Backend) {
	case "redis":
		r, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, r.Close)
		return r, nil
	case "memory":
		m := cache.NewMemory()
		if err := app.schedulePurge(ctx, m); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, nil
	}
}

// schedulePurge periodically drops expired entries from the memory cache
func (app *App) schedulePurge(ctx context.Context, m *cache.Memory) error {
	interval := app.cfg.Cache.PurgeInterval
	if interval <= 0 {
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	logger := app.logger.With("component", "cache-purge")
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if removed := m.Purge(); removed > 0 {
				logger.Debug("purged expired cache entries", "removed", removed, "remaining", m.Len())
			}
		}),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("cache_purge_job"),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("failed to schedule cache purge: %w", err)
	}

	scheduler.Start()
	app.closers = append(app.closers, scheduler.Shutdown)
	return nil
}

// newLLMClient falls back to a client that always fails so the hospital
// endpoints stay usable without a key
func (app *App) newLLMClient() llm.Client {
	cfg := app.cfg.LLM
	client, err := llm.NewOpenAIClient(llm.Config{
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
		JSONMode:    true,
	}, app.logger)
	if err != nil {
		app.logger.Warn("symptom analysis disabled", "error", err)
		return llm.Unconfigured{}
	}
	app.llmConfigured = true
	return client
}
