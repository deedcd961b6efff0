package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutUsecase drives the payment handshake of a session:
// address selection, intent creation, the payment widget and verification.
type CheckoutUsecase interface {
	// Begin loads the address book and starts address selection.
	Begin(ctx context.Context, session *entity.Session) (*entity.CheckoutView, error)
	View(ctx context.Context, session *entity.Session) *entity.CheckoutView
	SelectAddress(ctx context.Context, session *entity.Session, addressID string) (*entity.CheckoutView, error)

	// Pay creates a new payment intent for the current cart and opens the widget.
	Pay(ctx context.Context, session *entity.Session) (*entity.CheckoutView, error)

	// Complete is the widget's success outcome.
	Complete(ctx context.Context, session *entity.Session, proof entity.PaymentProof) (*entity.CheckoutView, error)

	// Fail is the widget's failure outcome. An empty intentID means the current intent.
	Fail(ctx context.Context, session *entity.Session, intentID, reason string) (*entity.CheckoutView, error)
}
