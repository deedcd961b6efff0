// Package payment adapts the hosted payment widget. The browser renders the
// widget from WidgetOptions and reports its outcome back through a handle.
package payment

import (
	"context"
	"fmt"
	"sync/atomic"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

type hostedWidget struct {
	cfg config.PaymentConfig
}

// NewHostedWidget creates the PaymentWidget used by checkout.
func NewHostedWidget(cfg *config.Config) service.PaymentWidget {
	var paymentCfg config.PaymentConfig
	if cfg.Payment != nil {
		paymentCfg = *cfg.Payment
	}

	return &hostedWidget{cfg: paymentCfg}
}

// Open fills merchant defaults into opts and returns an unsettled handle.
func (w *hostedWidget) Open(ctx context.Context, opts entity.WidgetOptions) (service.WidgetHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if opts.IntentID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("payment widget requires an intent id")
	}
	if opts.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("payment widget requires a positive amount")
	}

	opts.Handle = uuid.NewString()
	if opts.KeyID == "" {
		opts.KeyID = w.cfg.KeyID
	}
	if opts.Currency == "" {
		opts.Currency = w.cfg.Currency
	}
	if opts.Name == "" {
		opts.Name = w.cfg.MerchantName
	}
	if opts.Description == "" {
		opts.Description = w.cfg.Description
	}
	if opts.Theme.Color == "" {
		opts.Theme.Color = w.cfg.ThemeColor
	}

	return &widgetHandle{opts: opts}, nil
}

type widgetHandle struct {
	opts    entity.WidgetOptions
	settled atomic.Bool
}

func (h *widgetHandle) ID() string {
	return h.opts.Handle
}

func (h *widgetHandle) Options() entity.WidgetOptions {
	return h.opts
}

// Succeed settles the handle with a proof for this handle's intent.
func (h *widgetHandle) Succeed(proof entity.PaymentProof) error {
	if proof.IntentID != h.opts.IntentID {
		return domainerrors.ErrIntentMismatch.WithDetails(
			fmt.Sprintf("expected intent %s, received %s", h.opts.IntentID, proof.IntentID),
		)
	}
	if proof.PaymentID == "" || proof.Signature == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("payment proof is incomplete")
	}

	return h.settle()
}

func (h *widgetHandle) Fail(_ string) error {
	return h.settle()
}

func (h *widgetHandle) Settled() bool {
	return h.settled.Load()
}

func (h *widgetHandle) settle() error {
	if !h.settled.CompareAndSwap(false, true) {
		return domainerrors.ErrWidgetAlreadySettled
	}

	return nil
}
