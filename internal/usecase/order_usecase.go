package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase reads the orders of a session and the confirmation of the last checkout.
type OrderUsecase interface {
	MyOrders(ctx context.Context, session *entity.Session) ([]entity.Order, error)
	OrderDetails(ctx context.Context, session *entity.Session, orderID string) (*entity.Order, error)

	// Confirmation returns the order id of the last completed checkout, or "".
	Confirmation(ctx context.Context, session *entity.Session) string

	// LeaveConfirmation clears the confirmation; it is shown once.
	LeaveConfirmation(ctx context.Context, session *entity.Session)

	TrackingQR(ctx context.Context, session *entity.Session, orderID string) ([]byte, error)
}
