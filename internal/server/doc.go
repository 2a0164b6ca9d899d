// Package server runs the HTTP API server.
//
// It owns the listener lifecycle: startup, termination signal handling and
// graceful shutdown bounded by the configured timeout.
package server
