package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvHTTPAddr            = "HUDDLE_HTTP_ADDR"
	EnvDatabaseDSN         = "HUDDLE_DATABASE_DSN"
	EnvJWTSecret           = "HUDDLE_JWT_SECRET"
	EnvRunMigrations       = "HUDDLE_RUN_MIGRATIONS"
	EnvS3AccessKey         = "HUDDLE_S3_ACCESS_KEY"
	EnvS3SecretKey         = "HUDDLE_S3_SECRET_KEY"
	EnvS3Region            = "HUDDLE_S3_REGION"
	EnvS3Endpoint          = "HUDDLE_S3_ENDPOINT"
	EnvProfileImagesBucket = "HUDDLE_PROFILE_IMAGES_BUCKET"
	EnvEventImagesBucket   = "HUDDLE_EVENT_IMAGES_BUCKET"
	EnvGeoIPBaseURL        = "HUDDLE_GEOIP_URL"
	EnvGeoIPTimeout        = "HUDDLE_GEOIP_TIMEOUT"
	EnvStatusURL           = "HUDDLE_STATUS_URL"
	EnvStatusTTL           = "HUDDLE_STATUS_TTL"
	EnvLogLevel            = "HUDDLE_LOG_LEVEL"
	EnvConfigFile          = "HUDDLE_CONFIG"
)

// loadDotEnv is a seam for tests.
var loadDotEnv = func() { _ = godotenv.Load() }

// parseEnv overlays values from the process environment. A .env file in the
// working directory, if present, is loaded first; variables already set in
// the environment win over the file.
//
// Malformed durations or booleans panic, matching the other loaders.
func parseEnv(config *Config) {
	loadDotEnv()

	setString(&config.EndpointAddrHTTP, EnvHTTPAddr)
	setString(&config.DatabaseDSN, EnvDatabaseDSN)
	setString(&config.SecretKey, EnvJWTSecret)
	setString(&config.S3RootUser, EnvS3AccessKey)
	setString(&config.S3RootPassword, EnvS3SecretKey)
	setString(&config.S3Region, EnvS3Region)
	setString(&config.S3BaseEndpoint, EnvS3Endpoint)
	setString(&config.ProfileImagesBucket, EnvProfileImagesBucket)
	setString(&config.EventImagesBucket, EnvEventImagesBucket)
	setString(&config.GeoIPBaseURL, EnvGeoIPBaseURL)
	setString(&config.StatusURL, EnvStatusURL)
	setString(&config.LogLevel, EnvLogLevel)

	setDuration(&config.GeoIPTimeout, EnvGeoIPTimeout)
	setDuration(&config.StatusTTL, EnvStatusTTL)

	if v, ok := os.LookupEnv(EnvRunMigrations); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		config.RunMigrations = b
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
