// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines
// the configuration structure and its fallbacks: listen port, API key, body
// limit for uploaded presets, and the read timeout.
package server
