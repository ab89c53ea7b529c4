package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/huddle/internal/flagx"
	"github.com/dmitrijs2005/huddle/internal/timex"
)

// FileConfig is the on-disk shape of the server configuration. It uses
// timex.Duration for intervals, which accepts strings such as "3s" and,
// in JSON, integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading config files.
// Non-zero fields are copied into the runtime Config.
type FileConfig struct {
	EndpointAddrHTTP    string         `json:"endpoint_addr_http" toml:"endpoint_addr_http"`
	DatabaseDSN         string         `json:"database_dsn" toml:"database_dsn"`
	SecretKey           string         `json:"secret_key" toml:"secret_key"`
	RunMigrations       *bool          `json:"run_migrations" toml:"run_migrations"`
	S3RootUser          string         `json:"s3_root_user" toml:"s3_root_user"`
	S3RootPassword      string         `json:"s3_root_password" toml:"s3_root_password"`
	S3Region            string         `json:"s3_region" toml:"s3_region"`
	S3BaseEndpoint      string         `json:"s3_base_endpoint" toml:"s3_base_endpoint"`
	ProfileImagesBucket string         `json:"profile_images_bucket" toml:"profile_images_bucket"`
	EventImagesBucket   string         `json:"event_images_bucket" toml:"event_images_bucket"`
	GeoIPBaseURL        string         `json:"geoip_base_url" toml:"geoip_base_url"`
	GeoIPTimeout        timex.Duration `json:"geoip_timeout" toml:"geoip_timeout"`
	StatusURL           string         `json:"status_url" toml:"status_url"`
	StatusTTL           timex.Duration `json:"status_ttl" toml:"status_ttl"`
	LogLevel            string         `json:"log_level" toml:"log_level"`
}

// parseFile loads configuration values from a JSON or TOML file into the
// provided Config instance.
//
// The file path comes from the -c / -config flags, or HUDDLE_CONFIG when no
// flag is given. Files ending in ".toml" are decoded as TOML, everything
// else as JSON. If the file cannot be read or decoded, the function panics.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag(EnvConfigFile)
	if path == "" {
		return
	}

	c := &FileConfig{}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, c); err != nil {
			panic(err)
		}
	} else {
		file, err := os.ReadFile(path)
		if err != nil {
			panic(err)
		}
		if err := json.Unmarshal(file, c); err != nil {
			panic(err)
		}
	}

	c.apply(config)
}

func (c *FileConfig) apply(config *Config) {
	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	overlay(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.S3RootUser, c.S3RootUser)
	overlay(&config.S3RootPassword, c.S3RootPassword)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	overlay(&config.ProfileImagesBucket, c.ProfileImagesBucket)
	overlay(&config.EventImagesBucket, c.EventImagesBucket)
	overlay(&config.GeoIPBaseURL, c.GeoIPBaseURL)
	overlay(&config.StatusURL, c.StatusURL)
	overlay(&config.LogLevel, c.LogLevel)

	if c.RunMigrations != nil {
		config.RunMigrations = *c.RunMigrations
	}
	if c.GeoIPTimeout.Duration > 0 {
		config.GeoIPTimeout = c.GeoIPTimeout.Duration
	}
	if c.StatusTTL.Duration > 0 {
		config.StatusTTL = c.StatusTTL.Duration
	}
}
