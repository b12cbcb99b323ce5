package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Hospitals HospitalsConfig
	Overpass  OverpassConfig
	Nominatim NominatimConfig
	LLM       LLMConfig
	Cache     CacheConfig
	Retry     RetryConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port            int
	GinMode         string // debug, release, test
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// HospitalsConfig controls the nearby-hospital lookup
type HospitalsConfig struct {
	Source         string // overpass, places
	Category       string // OSM amenity / places query, e.g. hospital
	RadiusMeters   int
	Limit          int
	OpenOnly       bool
	ReverseGeocode bool // label the search area via Nominatim
}

// OverpassConfig holds the public map-data API settings
type OverpassConfig struct {
	URL     string
	Timeout time.Duration
}

// NominatimConfig holds the reverse geocoding API settings
type NominatimConfig struct {
	URL       string
	UserAgent string
}

// LLMConfig holds the language-suggestion model settings
type LLMConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// CacheConfig holds the place-search cache settings
type CacheConfig struct {
	Backend       string // memory, redis, none
	TTL           time.Duration
	PurgeInterval time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// RetryConfig bounds retries of upstream place searches
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	AttemptTimeout  time.Duration
}

// Load reads configuration from file and environment variables.
// Environment variables use the MEDI_ASSIST prefix with dots replaced by
// underscores, e.g. MEDI_ASSIST_LLM_APIKEY.
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.medi-assist")

	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("MEDI_ASSIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers a default for every key. AutomaticEnv only
// overrides keys viper already knows about.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.readtimeout", 10*time.Second)
	v.SetDefault("server.writetimeout", 60*time.Second)
	v.SetDefault("server.shutdowntimeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("hospitals.source", "overpass")
	v.SetDefault("hospitals.category", "hospital")
	v.SetDefault("hospitals.radiusmeters", 5000)
	v.SetDefault("hospitals.limit", 5)
	v.SetDefault("hospitals.openonly", true)
	v.SetDefault("hospitals.reversegeocode", false)

	v.SetDefault("overpass.url", "https://overpass-api.de/api/interpreter")
	v.SetDefault("overpass.timeout", 25*time.Second)

	v.SetDefault("nominatim.url", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("nominatim.useragent", "medi-assist/1.0")

	v.SetDefault("llm.apikey", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.baseurl", "")
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.timeout", 30*time.Second)

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.purgeinterval", 5*time.Minute)
	v.SetDefault("cache.redisaddr", "localhost:6379")
	v.SetDefault("cache.redispassword", "")
	v.SetDefault("cache.redisdb", 0)

	v.SetDefault("retry.maxattempts", 3)
	v.SetDefault("retry.initialinterval", 200*time.Millisecond)
	v.SetDefault("retry.maxinterval", 2*time.Second)
	v.SetDefault("retry.attempttimeout", 10*time.Second)
}

// Validate checks enumerated settings and numeric bounds
func (c *Config) Validate() error {
	switch strings.ToLower(c.Hospitals.Source) {
	case "overpass", "places":
	default:
		return fmt.Errorf("invalid hospitals.source %q: must be overpass or places", c.Hospitals.Source)
	}
	switch strings.ToLower(c.Cache.Backend) {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("invalid cache.backend %q: must be memory, redis or none", c.Cache.Backend)
	}
	if c.Hospitals.Limit < 1 {
		return fmt.Errorf("invalid hospitals.limit %d: must be at least 1", c.Hospitals.Limit)
	}
	if c.Hospitals.RadiusMeters < 1 {
		return fmt.Errorf("invalid hospitals.radiusMeters %d: must be positive", c.Hospitals.RadiusMeters)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("invalid retry.maxAttempts %d: must be at least 1", c.Retry.MaxAttempts)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
