package config

import "time"

// Config holds runtime settings for the huddlectl admin console.
//
// Fields:
//   - ServerBaseURL: base URL of the functions server, without the /functions/v1 prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - AccessToken: optional bearer token; when empty the console prompts for one.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	AccessToken    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.AccessToken = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
