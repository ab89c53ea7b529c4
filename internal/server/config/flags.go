package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/huddle/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string             HTTP bind address (e.g., ":8080")
//	-d string             PostgreSQL DSN
//	-s string             JWT HMAC secret key
//	-u string             S3 access key
//	-p string             S3 secret key
//	-g string             S3 region
//	-e string             S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-profile-bucket string
//	-event-bucket string
//	-geo-url string       IP geolocation base URL
//	-geo-timeout duration IP geolocation timeout (e.g., "3s")
//	-status-url string    upstream status summary URL
//	-status-ttl duration  status cache TTL (e.g., "60s")
//	-l string             log level
//	-migrate              run embedded migrations at startup
//
// The function first filters os.Args down to the flags it recognizes using
// flagx.FilterArgs, so flags meant for other components do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-u", "-p", "-g", "-e",
		"-profile-bucket", "-event-bucket",
		"-geo-url", "-geo-timeout", "-status-url", "-status-ttl", "-l",
	}, "-migrate")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT secret key")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 access key")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 secret key")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.ProfileImagesBucket, "profile-bucket", config.ProfileImagesBucket, "profile images bucket")
	fs.StringVar(&config.EventImagesBucket, "event-bucket", config.EventImagesBucket, "event images bucket")

	fs.StringVar(&config.GeoIPBaseURL, "geo-url", config.GeoIPBaseURL, "IP geolocation base URL")
	fs.DurationVar(&config.GeoIPTimeout, "geo-timeout", config.GeoIPTimeout, "IP geolocation timeout")
	fs.StringVar(&config.StatusURL, "status-url", config.StatusURL, "upstream status summary URL")
	fs.DurationVar(&config.StatusTTL, "status-ttl", config.StatusTTL, "status cache TTL")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.RunMigrations, "migrate", config.RunMigrations, "run database migrations at startup")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
