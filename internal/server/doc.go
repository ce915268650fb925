// Package server wires and runs the transport servers.
//
// It starts the HTTP and gRPC servers side by side in an errgroup and shuts
// all of them down gracefully on a stop signal or when one of them fails.
package server
