// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound adapter, such as an HTTP server. Serve
// blocks until the delivery stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
