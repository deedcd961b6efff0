package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AdminUsecase is the back office: users, products, orders, reviews and the
// dashboard. Deletes remove the item locally first and re-read the list when
// the request fails.
type AdminUsecase interface {
	FetchUsers(ctx context.Context, session *entity.Session) ([]entity.User, error)
	DeleteUser(ctx context.Context, session *entity.Session, userID string) ([]entity.User, error)

	FetchProducts(ctx context.Context, session *entity.Session) ([]entity.Product, error)
	ProductForEdit(ctx context.Context, session *entity.Session, productID string) (*entity.Product, error)
	CreateProduct(ctx context.Context, session *entity.Session, input entity.ProductInput) ([]entity.Product, error)
	UpdateProduct(ctx context.Context, session *entity.Session, productID string, input entity.ProductInput) ([]entity.Product, error)
	DeleteProduct(ctx context.Context, session *entity.Session, productID string) ([]entity.Product, error)

	FetchOrders(ctx context.Context, session *entity.Session) ([]entity.Order, error)

	// UpdateOrderStatus requests a status change; legality of the transition is decided by the backend.
	UpdateOrderStatus(ctx context.Context, session *entity.Session, orderID string, status entity.OrderStatus) ([]entity.Order, error)

	FetchReviews(ctx context.Context, session *entity.Session) ([]entity.Review, error)
	DeleteReview(ctx context.Context, session *entity.Session, reviewID string) ([]entity.Review, error)

	// DashboardStats never fails; a failed read returns the previous stats.
	DashboardStats(ctx context.Context, session *entity.Session) *entity.DashboardStats
}
