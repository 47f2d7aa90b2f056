// Package delivery defines the contract every transport entry point
// (HTTP server, background scheduler) fulfills.
package delivery

import "context"

// Delivery is a long-running entry point started by the composition root.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is canceled.
	Serve(ctx context.Context) error
}
