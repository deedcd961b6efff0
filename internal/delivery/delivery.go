// Package delivery contains the inbound adapters of the storefront.
package delivery

import "context"

// Delivery is a server fx starts at boot.
type Delivery interface {
	Serve(ctx context.Context) error
}
