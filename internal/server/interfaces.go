package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is done or a transport fails, then shuts every
	// transport down. It returns the first transport error.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is one listening server.
type transport interface {
	name() string
	serve() error
	shutdown(ctx context.Context) error
}
