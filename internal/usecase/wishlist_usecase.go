package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistUsecase keeps the wishlist of a session.
type WishlistUsecase interface {
	Fetch(ctx context.Context, session *entity.Session) ([]entity.Product, error)

	// Toggle adds or removes productID and returns the backend's message with the refreshed list.
	Toggle(ctx context.Context, session *entity.Session, productID string) (string, []entity.Product, error)
}
