package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartView is the cart together with the price breakdown it implies.
type CartView struct {
	Cart      entity.Cart   `json:"cart"`
	Totals    entity.Totals `json:"totals"`
	ItemCount int           `json:"itemCount"`
}

// CartUsecase mirrors the server-held cart of a session. Every mutation is a
// round trip; quantities are never computed locally.
type CartUsecase interface {
	// Fetch replaces the cart with the server copy, or with an empty cart when the read fails.
	Fetch(ctx context.Context, session *entity.Session) *CartView
	Add(ctx context.Context, session *entity.Session, productID string, quantity int) (*CartView, error)
	Increase(ctx context.Context, session *entity.Session, productID string) (*CartView, error)
	Decrease(ctx context.Context, session *entity.Session, productID string) (*CartView, error)
	Remove(ctx context.Context, session *entity.Session, productID string) (*CartView, error)
}
