// Package server runs the catalog's HTTP server.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown that lets in-flight requests finish.
package server
