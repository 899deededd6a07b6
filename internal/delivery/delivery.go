// Package delivery defines the contract every transport front-end fulfills.
package delivery

import "context"

// Delivery is a transport surface (HTTP today) started by the application
// container. Serve blocks until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
