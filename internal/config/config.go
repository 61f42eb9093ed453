package config

import "os"

// Config holds the application-wide configuration, sourced from environment
// variables. Command-line flags may override individual fields.
type Config struct {
	// ServerPort is the listen port; empty means a dynamically assigned port.
	ServerPort string

	// WatchEnabled reloads the contract when the specification file changes.
	WatchEnabled bool

	// MetricsEnabled exposes the Prometheus /metrics endpoint.
	MetricsEnabled bool
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		ServerPort:     os.Getenv("SPECMOCK_PORT"),
		WatchEnabled:   envBool("SPECMOCK_WATCH"),
		MetricsEnabled: envBool("SPECMOCK_METRICS"),
	}
}

func envBool(key string) bool {
	return os.Getenv(key) == "true"
}
