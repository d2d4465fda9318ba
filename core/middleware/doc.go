// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key). An empty key disables the check.
//   - rayid: tags every request with a ray id, stored in the context locals
//     under "ray_id" and echoed in the X-Ray-ID response header.
//
// logger.WithRayID picks the ray id up for request scoped logging.
package middleware
