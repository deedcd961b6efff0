package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface. The phase of an
// attempt lives in the session's state.Checkout; this service performs the
// network steps between phases. Nothing here retries.
type checkoutService struct {
	addressAPI service.AddressAPI
	orderAPI   service.OrderAPI
	widget     service.PaymentWidget
	publisher  service.EventPublisher
	cart       usecase.CartUsecase
	registry   *state.Registry
	taxRate    decimal.Decimal
	now        func() time.Time
	logger     *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	AddressAPI service.AddressAPI
	OrderAPI   service.OrderAPI
	Widget     service.PaymentWidget
	Publisher  service.EventPublisher
	Cart       usecase.CartUsecase
	Registry   *state.Registry
	Config     *config.Config
	Logger     *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		addressAPI: params.AddressAPI,
		orderAPI:   params.OrderAPI,
		widget:     params.Widget,
		publisher:  params.Publisher,
		cart:       params.Cart,
		registry:   params.Registry,
		taxRate:    taxRate(params.Config),
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *checkoutService) Begin(ctx context.Context, session *entity.Session) (*entity.CheckoutView, error) {
	ws := srv.registry.Workspace(session.ID)
	if ws.Checkout.Phase().Busy() {
		return nil, domainerrors.ErrCheckoutInProgress
	}

	list, err := srv.addressAPI.ListAddresses(ctx, session.BackendToken)
	if err != nil {
		log(ctx, srv.logger).Warn("Address read failed, opening checkout with cached addresses", slog.Any("error", err))
		list = ws.Addresses.Snapshot()
	} else {
		list = ws.Addresses.Replace(list)
	}

	if err := ws.Checkout.Open(list); err != nil {
		return nil, err
	}
	srv.cart.Fetch(ctx, session)

	return srv.View(ctx, session), nil
}

func (srv *checkoutService) View(_ context.Context, session *entity.Session) *entity.CheckoutView {
	ws := srv.registry.Workspace(session.ID)

	view := ws.Checkout.View()
	view.Cart = ws.Cart.Snapshot()
	switch view.Phase {
	case entity.CheckoutPhaseIdle, entity.CheckoutPhaseAddressSelection:
		// Preview of what Pay will charge; fixed once an intent is requested.
		view.Totals = entity.ComputeTotals(view.Cart.Lines, srv.taxRate)
	}

	return &view
}

func (srv *checkoutService) SelectAddress(ctx context.Context, session *entity.Session, addressID string) (*entity.CheckoutView, error) {
	if err := srv.registry.Workspace(session.ID).Checkout.Select(addressID); err != nil {
		return nil, err
	}

	return srv.View(ctx, session), nil
}

func (srv *checkoutService) Pay(ctx context.Context, session *entity.Session) (*entity.CheckoutView, error) {
	ws := srv.registry.Workspace(session.ID)

	cart := ws.Cart.Snapshot()
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}

	// Totals are computed and rounded here, once per attempt.
	totals := entity.ComputeTotals(cart.Lines, srv.taxRate)

	addressID, err := ws.Checkout.StartIntent(totals)
	if err != nil {
		return nil, err
	}

	intent, err := srv.orderAPI.CreatePaymentIntent(ctx, session.BackendToken, totals.Total, addressID)
	if err != nil {
		log(ctx, srv.logger).Error("Payment intent creation failed",
			slog.Int64("amount", totals.Total),
			slog.String("address_id", addressID),
			slog.Any("error", err),
		)
		ws.Checkout.Abort(domainerrors.ErrIntentCreationFailed.Message())

		return nil, domainerrors.NewOperationError(domainerrors.ErrIntentCreationFailed, err)
	}

	amount := intent.Amount
	if amount <= 0 {
		amount = totals.Total
	}
	handle, err := srv.widget.Open(ctx, entity.WidgetOptions{
		IntentID: intent.ID,
		Amount:   amount,
		Currency: intent.Currency,
		Prefill: entity.Prefill{
			Name:    session.User.Name,
			Email:   session.User.Email,
			Contact: contactPhone(session, ws.Checkout.View().Addresses, addressID),
		},
	})
	if err != nil {
		log(ctx, srv.logger).Error("Payment widget could not be opened", slog.String("intent_id", intent.ID), slog.Any("error", err))
		ws.Checkout.Abort(domainerrors.ErrPaymentFailed.Message())

		return nil, domainerrors.NewOperationError(domainerrors.ErrPaymentFailed, err)
	}

	if err := ws.Checkout.AwaitPayment(intent, handle); err != nil {
		return nil, err
	}

	srv.publish(ctx, session, &service.CheckoutEvent{
		Type:      constants.EventIntentCreated,
		IntentID:  intent.ID,
		AddressID: addressID,
		Amount:    totals.Total,
		Currency:  intent.Currency,
	})

	return srv.View(ctx, session), nil
}

// contactPhone prefers the phone of the delivery address over the account's.
func contactPhone(session *entity.Session, addresses []entity.Address, addressID string) string {
	if addr, ok := entity.FindAddress(addresses, addressID); ok && addr.Phone != "" {
		return addr.Phone
	}

	return session.User.Phone
}

func (srv *checkoutService) Complete(ctx context.Context, session *entity.Session, proof entity.PaymentProof) (*entity.CheckoutView, error) {
	ws := srv.registry.Workspace(session.ID)

	addressID, err := ws.Checkout.AcceptProof(proof)
	if err != nil {
		return nil, err
	}

	orderID, err := srv.orderAPI.VerifyPayment(ctx, session.BackendToken, proof, addressID)
	if err == nil && orderID == "" {
		err = domainerrors.ErrBackendRejected.WithDetails("verification returned no order")
	}
	if err != nil {
		log(ctx, srv.logger).Error("Payment verification failed",
			slog.String("intent_id", proof.IntentID),
			slog.String("payment_id", proof.PaymentID),
			slog.Any("error", err),
		)
		ws.Checkout.Abort(domainerrors.ErrPaymentVerificationFailed.Message())
		srv.publish(ctx, session, &service.CheckoutEvent{
			Type:      constants.EventVerificationFailed,
			IntentID:  proof.IntentID,
			AddressID: addressID,
			Reason:    err.Error(),
		})

		return nil, domainerrors.NewOperationError(domainerrors.ErrPaymentVerificationFailed, err)
	}

	if err := ws.Checkout.Complete(orderID); err != nil {
		return nil, err
	}
	ws.Orders.SetConfirmed(orderID)

	log(ctx, srv.logger).Info("Order confirmed",
		slog.String("order_id", orderID),
		slog.String("intent_id", proof.IntentID),
	)
	srv.publish(ctx, session, &service.CheckoutEvent{
		Type:      constants.EventOrderConfirmed,
		IntentID:  proof.IntentID,
		OrderID:   orderID,
		AddressID: addressID,
	})

	// The backend empties the cart as part of the order; a failed read is not rolled back.
	srv.cart.Fetch(ctx, session)

	return srv.View(ctx, session), nil
}

func (srv *checkoutService) Fail(ctx context.Context, session *entity.Session, intentID, reason string) (*entity.CheckoutView, error) {
	ws := srv.registry.Workspace(session.ID)

	if intentID == "" {
		if intent := ws.Checkout.Intent(); intent != nil {
			intentID = intent.ID
		}
	}

	message := reason
	if message == "" {
		message = domainerrors.ErrPaymentFailed.Message()
	}
	if err := ws.Checkout.AcceptFailure(intentID, message); err != nil {
		return nil, err
	}

	log(ctx, srv.logger).Info("Payment not completed",
		slog.String("intent_id", intentID),
		slog.String("reason", reason),
	)
	srv.publish(ctx, session, &service.CheckoutEvent{
		Type:     constants.EventPaymentFailed,
		IntentID: intentID,
		Reason:   reason,
	})

	return nil, domainerrors.ErrPaymentFailed.WithDetails(reason)
}

// publish sends event and logs a failure; checkout does not depend on delivery.
func (srv *checkoutService) publish(ctx context.Context, session *entity.Session, event *service.CheckoutEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.SessionID = session.ID
	event.UserID = session.User.ID
	event.OccurredAt = srv.now()

	if err := srv.publisher.PublishCheckoutEvent(ctx, event); err != nil {
		log(ctx, srv.logger).Warn("Failed to publish checkout event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
