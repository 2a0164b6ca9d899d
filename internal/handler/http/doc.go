// Package http serves the go-task-keeper REST API.
//
// Routes are wired with chi in routes.go. Task routes sit behind the bearer
// token middleware, user and version routes are public. Every response passes
// through trace id, metrics, access log and gzip middleware, and every error
// body is rendered from the service sentinel it wraps (see errors_mapper.go).
package http
