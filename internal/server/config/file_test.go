package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	jsonPath := writeTempFile(t, "flag.json", `{
		"endpoint_addr_http": "www.example:9000",
		"database_dsn": "postgres://json",
		"secret_key": "my_secret_key",
		"run_migrations": true,
		"s3_root_user": "user",
		"s3_root_password": "password",
		"s3_region": "region",
		"s3_base_endpoint": "base_endpoint",
		"profile_images_bucket": "avatars",
		"event_images_bucket": "covers",
		"geoip_base_url": "http://geo",
		"geoip_timeout": "2s",
		"status_url": "http://status",
		"status_ttl": 30000000000,
		"log_level": "debug"
	}`)

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", jsonPath}

		cfg := &Config{}
		parseFile(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.True(t, cfg.RunMigrations)
		assert.Equal(t, "user", cfg.S3RootUser)
		assert.Equal(t, "password", cfg.S3RootPassword)
		assert.Equal(t, "region", cfg.S3Region)
		assert.Equal(t, "base_endpoint", cfg.S3BaseEndpoint)
		assert.Equal(t, "avatars", cfg.ProfileImagesBucket)
		assert.Equal(t, "covers", cfg.EventImagesBucket)
		assert.Equal(t, "http://geo", cfg.GeoIPBaseURL)
		assert.Equal(t, 2*time.Second, cfg.GeoIPTimeout)
		assert.Equal(t, "http://status", cfg.StatusURL)
		assert.Equal(t, 30*time.Second, cfg.StatusTTL)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("loads from toml", func(t *testing.T) {
		tomlPath := writeTempFile(t, "huddle.toml", `
endpoint_addr_http = ":8181"
secret_key = "toml-secret"
geoip_timeout = "1500ms"
status_ttl = "2m"
`)
		os.Args = []string{"testbin", "-c", tomlPath}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, ":8181", cfg.EndpointAddrHTTP)
		assert.Equal(t, "toml-secret", cfg.SecretKey)
		assert.Equal(t, 1500*time.Millisecond, cfg.GeoIPTimeout)
		assert.Equal(t, 2*time.Minute, cfg.StatusTTL)
		assert.Equal(t, "event-images", cfg.EventImagesBucket, "absent keys keep defaults")
	})

	t.Run("no config and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(EnvConfigFile, "")

		cfg := &Config{
			EndpointAddrHTTP: "defaults:1234",
			SecretKey:        "key",
			StatusTTL:        time.Minute,
		}
		parseFile(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrHTTP)
		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, time.Minute, cfg.StatusTTL)
	})

	t.Run("path from environment", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(EnvConfigFile, jsonPath)

		cfg := &Config{}
		parseFile(cfg)
		assert.Equal(t, "www.example:9000", cfg.EndpointAddrHTTP)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := writeTempFile(t, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseFile(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.toml")}

		cfg := &Config{}
		require.Panics(t, func() { parseFile(cfg) })
	})
}
