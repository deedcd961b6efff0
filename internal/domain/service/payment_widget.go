package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PaymentWidget opens the hosted payment widget for an intent. The widget
// reports back exactly once, either with a proof of payment or with a reason.
type PaymentWidget interface {
	Open(ctx context.Context, opts entity.WidgetOptions) (WidgetHandle, error)
}

// WidgetHandle is the continuation of one opened widget. The first of Succeed
// or Fail settles it; every later call returns ErrWidgetAlreadySettled.
type WidgetHandle interface {
	ID() string
	Options() entity.WidgetOptions
	Succeed(proof entity.PaymentProof) error
	Fail(reason string) error
	Settled() bool
}
