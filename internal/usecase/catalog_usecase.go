package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// MinSuggestionKeyword is the shortest keyword that is sent for suggestions.
const MinSuggestionKeyword = 2

// CatalogUsecase reads the product catalog. Reads replace the cached slice
// they belong to; nothing in the catalog is edited locally.
type CatalogUsecase interface {
	// ListProducts degrades to the previously fetched listing on failure.
	ListProducts(ctx context.Context, query entity.ProductQuery) ([]entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// GetReviews never fails; a failed fetch returns the previous reviews.
	GetReviews(ctx context.Context, productID string) []entity.Review

	// AddReview posts a review and returns the refreshed reviews of the product.
	AddReview(ctx context.Context, session *entity.Session, input entity.ReviewInput) ([]entity.Review, error)

	HomeData(ctx context.Context) (*entity.HomeData, error)
	SearchSuggestions(ctx context.Context, keyword string) []string
}
