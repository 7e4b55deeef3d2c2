// Package delivery defines the contract every transport (HTTP, worker, ...)
// fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
