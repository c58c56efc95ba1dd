// Package server runs the HTTP server of the blog backend.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown that lets in-flight requests finish.
package server
