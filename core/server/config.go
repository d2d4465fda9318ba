package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitBytes caps the size of an uploaded preset document.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"4194304"`
	// ReadTimeoutSeconds bounds reading a request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"15"`
}

// ReadTimeout returns the request read timeout, defaulting to 15 seconds.
func (c Config) ReadTimeout() time.Duration {
	if c.ReadTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// BodyLimit returns the request body limit, defaulting to 4 MiB.
func (c Config) BodyLimit() int {
	if c.BodyLimitBytes <= 0 {
		return 4 << 20
	}
	return c.BodyLimitBytes
}
