package server

// Server owns the lifetime of the blog HTTP listener.
type Server interface {
	// RunServer blocks until the process receives SIGINT, SIGTERM or SIGQUIT
	// or the listener fails, and stops accepting requests before returning.
	RunServer()

	// Shutdown drains in-flight requests, waiting at most the shutdown
	// timeout. It is safe to call after RunServer returned.
	Shutdown()
}
