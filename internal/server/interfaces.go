package server

// Server is the lifecycle of the catalog API process.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down
	// gracefully. It blocks for the whole time.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// up to the shutdown timeout.
	Shutdown()
}
