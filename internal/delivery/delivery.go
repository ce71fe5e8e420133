// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a serving surface of the application. Implementations block in
// Serve until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
