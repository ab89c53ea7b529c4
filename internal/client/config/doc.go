// Package config loads runtime configuration for the huddlectl console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the functions server
//	-t int      request timeout (seconds)
//	-k string   access token
//
// # JSON schema
//
//	{
//	  "server_base_url": "https://functions.huddle.app",
//	  "request_timeout": "10s",
//	  "access_token": "eyJ..."
//	}
package config
