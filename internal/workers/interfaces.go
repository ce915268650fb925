// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Run must not block: long-running workers spawn their own goroutines and
// return.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that hold background goroutines.
// Stop blocks until they have exited.
type Stopper interface {
	Stop()
}

// Purger drops expired entries from a store and reports how many were
// removed.
type Purger interface {
	Purge(ctx context.Context) (int64, error)
}
