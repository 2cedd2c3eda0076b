// Package config holds the process configuration. It is read from the
// environment exactly once at startup and passed explicitly into the
// constructors that need it; nothing else in the program touches os.Getenv.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Defaults point at a local distribution-center API and place the warehouse
// in downtown Toronto.
const (
	DefaultAPIURL             = "http://localhost:8081/api/distribution-centers"
	DefaultAPIUsername        = "admin"
	DefaultAPIPassword        = "admin123"
	DefaultWarehouseLatitude  = 43.6532
	DefaultWarehouseLongitude = -79.3832
	DefaultServerPort         = "8080"
	DefaultAPITimeout         = 10 * time.Second
)

// Config is the full configuration surface of the server.
type Config struct {
	// Distribution-center API endpoint and HTTP Basic credentials.
	DistributionAPIURL string
	APIUsername        string
	APIPassword        string

	// Fixed warehouse location, sent to the closest-center search and used
	// for display distances.
	WarehouseLatitude  float64
	WarehouseLongitude float64

	// Upper bound on every distribution-center API call.
	APITimeout time.Duration

	// DatabaseURL selects the Postgres warehouse store when set; the server
	// falls back to the in-memory store when empty.
	DatabaseURL string

	ServerPort     string
	AllowedOrigins string
}

// Load reads the configuration from the environment, applying defaults for
// anything unset. Malformed numeric values are logged and replaced by their
// defaults rather than aborting startup.
func Load() Config {
	return Config{
		DistributionAPIURL: envOr("DIST_CENTER_API_URL", DefaultAPIURL),
		APIUsername:        envOr("DIST_CENTER_API_USERNAME", DefaultAPIUsername),
		APIPassword:        envOr("DIST_CENTER_API_PASSWORD", DefaultAPIPassword),
		WarehouseLatitude:  envFloatOr("WAREHOUSE_LATITUDE", DefaultWarehouseLatitude),
		WarehouseLongitude: envFloatOr("WAREHOUSE_LONGITUDE", DefaultWarehouseLongitude),
		APITimeout:         envDurationOr("DIST_CENTER_API_TIMEOUT", DefaultAPITimeout),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		ServerPort:         envOr("SERVER_PORT", DefaultServerPort),
		AllowedOrigins:     os.Getenv("ALLOWED_ORIGINS"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("config: invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return d
}
