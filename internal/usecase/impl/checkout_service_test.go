package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	addressAPI *mockService.MockAddressAPI
	orderAPI   *mockService.MockOrderAPI
	widget     *mockService.MockPaymentWidget
	publisher  *mockService.MockEventPublisher
	cart       *mockUsecase.MockCartUsecase
	registry   *state.Registry
	session    *entity.Session
	service    usecase.CheckoutUsecase
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		addressAPI: mockService.NewMockAddressAPI(t),
		orderAPI:   mockService.NewMockOrderAPI(t),
		widget:     mockService.NewMockPaymentWidget(t),
		publisher:  mockService.NewMockEventPublisher(t),
		cart:       mockUsecase.NewMockCartUsecase(t),
		registry:   state.NewRegistry(),
		session:    newTestSession(),
	}
	f.service = NewCheckoutService(CheckoutServiceParams{
		AddressAPI: f.addressAPI,
		OrderAPI:   f.orderAPI,
		Widget:     f.widget,
		Publisher:  f.publisher,
		Cart:       f.cart,
		Registry:   f.registry,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	f.publisher.EXPECT().PublishCheckoutEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.cart.EXPECT().Fetch(mock.Anything, f.session).Return(&usecase.CartView{}).Maybe()

	return f
}

// withCart puts a cart with a subtotal of 1000 in the session's workspace.
func (f *checkoutFixture) withCart() {
	f.registry.Workspace(f.session.ID).Cart.Replace([]entity.CartLine{
		{ProductID: "p1", Quantity: 2, PriceAtAdd: 400},
		{ProductID: "p2", Quantity: 1, PriceAtAdd: 200},
	})
}

func (f *checkoutFixture) begin(t *testing.T, addresses []entity.Address) *entity.CheckoutView {
	t.Helper()

	f.addressAPI.EXPECT().ListAddresses(mock.Anything, "backend-token").Return(addresses, nil).Once()

	view, err := f.service.Begin(context.Background(), f.session)
	require.NoError(t, err)

	return view
}

// expectIntent makes the next intent creation return intentID and opens a widget for it.
func (f *checkoutFixture) expectIntent(t *testing.T, intentID string) *mockService.MockWidgetHandle {
	t.Helper()

	handle := mockService.NewMockWidgetHandle(t)
	opts := entity.WidgetOptions{Handle: "h-" + intentID, IntentID: intentID, Amount: 1180, Currency: "INR"}
	handle.EXPECT().Options().Return(opts).Maybe()

	f.orderAPI.EXPECT().
		CreatePaymentIntent(mock.Anything, "backend-token", int64(1180), "B").
		Return(&entity.PaymentIntent{ID: intentID, Amount: 1180, Currency: "INR"}, nil).
		Once()
	f.widget.EXPECT().
		Open(mock.Anything, mock.MatchedBy(func(o entity.WidgetOptions) bool { return o.IntentID == intentID })).
		Return(handle, nil).
		Once()

	return handle
}

func TestCheckoutService_BeginSelectsDefaultAddress(t *testing.T) {
	f := newCheckoutFixture(t)

	view := f.begin(t, testAddresses())

	assert.Equal(t, entity.CheckoutPhaseAddressSelection, view.Phase)
	assert.Equal(t, "B", view.SelectedAddressID)
	assert.Len(t, f.registry.Workspace(f.session.ID).Addresses.Snapshot(), 2)
}

func TestCheckoutService_BeginFallsBackToFirstAddress(t *testing.T) {
	f := newCheckoutFixture(t)

	view := f.begin(t, []entity.Address{{ID: "A"}, {ID: "C"}})

	assert.Equal(t, "A", view.SelectedAddressID)
}

func TestCheckoutService_PayCreatesIntentForRoundedTotal(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withCart()
	f.begin(t, testAddresses())

	handle := mockService.NewMockWidgetHandle(t)
	handle.EXPECT().Options().Return(entity.WidgetOptions{Handle: "h1", IntentID: "order_1", Amount: 1180, Currency: "INR"})

	f.orderAPI.EXPECT().
		CreatePaymentIntent(mock.Anything, "backend-token", int64(1180), "B").
		Return(&entity.PaymentIntent{ID: "order_1", Amount: 1180, Currency: "INR"}, nil)
	f.widget.EXPECT().
		Open(mock.Anything, mock.AnythingOfType("entity.WidgetOptions")).
		Run(func(_ context.Context, opts entity.WidgetOptions) {
			assert.Equal(t, "order_1", opts.IntentID)
			assert.Equal(t, int64(1180), opts.Amount)
			assert.Equal(t, "INR", opts.Currency)
			assert.Equal(t, entity.Prefill{Name: "Asha", Email: "asha@example.com", Contact: "9876543210"}, opts.Prefill)
		}).
		Return(handle, nil)

	view, err := f.service.Pay(context.Background(), f.session)
	require.NoError(t, err)

	assert.Equal(t, entity.CheckoutPhaseAwaitingPayment, view.Phase)
	assert.Equal(t, "1000", view.Totals.Subtotal.String())
	assert.Equal(t, "180", view.Totals.Tax.String())
	assert.Equal(t, int64(1180), view.Totals.Total)
	require.NotNil(t, view.Widget)
	assert.Equal(t, "order_1", view.Widget.IntentID)
}

func TestCheckoutService_PayIsRejectedWhileAwaitingPayment(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withCart()
	f.begin(t, testAddresses())
	f.expectIntent(t, "order_1")

	_, err := f.service.Pay(context.Background(), f.session)
	require.NoError(t, err)

	_, err = f.service.Pay(context.Background(), f.session)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutInProgress)

	_, err = f.service.Begin(context.Background(), f.session)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutInProgress)
}

func TestCheckoutService_PayWithoutAddress(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withCart()
	f.begin(t, nil)

	view, err := f.service.Pay(context.Background(), f.session)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrNoAddressSelected)

	current := f.service.View(context.Background(), f.session)
	assert.Equal(t, entity.CheckoutPhaseAddressSelection, current.Phase)
	assert.Equal(t, domainerrors.ErrNoAddressSelected.Message(), current.LastError)
}

func TestCheckoutService_PayWithEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)
	f.begin(t, testAddresses())

	_, err := f.service.Pay(context.Background(), f.session)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_IntentFailureStaysInAddressSelection(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withCart()
	f.begin(t, testAddresses())

	backendErr := domainerrors.NewBackendError(500, "razorpay down", nil)
	f.orderAPI.EXPECT().
		CreatePaymentIntent(mock.Anything, "backend-token", int64(1180), "B").
		Return(nil, backendErr).
		Once()

	_, err := f.service.Pay(context.Background(), f.session)
	assert.ErrorIs(t, err, domainerrors.ErrIntentCreationFailed)
	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)

	view := f.service.View(context.Background(), f.session)
	assert.Equal(t, entity.CheckoutPhaseAddressSelection, view.Phase)
	assert.Equal(t, "B", view.SelectedAddressID)
	assert.Nil(t, view.Widget)

	f.expectIntent(t, "order_2")

	view, err = f.service.Pay(context.Background(), f.session)
	require.NoError(t, err)
	assert.Equal(t, "order_2", view.Widget.IntentID)
}

func TestCheckoutService_CancelledPaymentCreatesNewIntentOnRetry(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withCart()
	f.begin(t, testAddresses())

	first := f.expectIntent(t, "order_1")
	first.EXPECT().Fail("User cancelled").Return(nil)

	_, err := f.service.Pay(context.Background(), f.session)
	require.NoError(t, err)

	view, err := f.service.Fail(context.Background(), f.session, "order_1", "User cancelled")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
	assert.ErrorContains(t, err, "User cancelled")

	current := f.service.View(context.Background(), f.session)
	assert.Equal(t, entity.CheckoutPhaseAddressSelection, current.Phase)
	assert.Equal(t, "User cancelled", current.LastError)
	assert.Empty(t, current.OrderID)

	f.expectIntent(t, "order_2")

	retried, err := f.service.Pay(context.Background(), f.session)
	require.NoError(t, err)
	assert.Equal(t, "order_2", retried.Widget.IntentID)
}

func TestCheckoutService_SecondSettlementIsRejected(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withCart()
	f.begin(t, testAddresses())

	handle := f.expectIntent(t, "order_1")
	handle.EXPECT().Fail("closed").Return(nil).Once()

	_, err := f.service.Pay(context.Background(), f.session)
	require.NoError(t, err)

	_, err = f.service.Fail(context.Background(), f.session, "", "closed")
	require.ErrorIs(t, err, domainerrors.ErrPaymentFailed)

	_, err = f.service.Complete(context.Background(), f.session,
		entity.PaymentProof{IntentID: "order_1", PaymentID: "pay_1", Signature: "sig"})
	assert.ErrorIs(t, err, domainerrors.ErrWidgetAlreadySettled)
}

func TestCheckoutService_CompleteConfirmsOrder(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withCart()
	f.begin(t, testAddresses())

	proof := entity.PaymentProof{IntentID: "order_1", PaymentID: "pay_1", Signature: "sig"}
	handle := f.expectIntent(t, "order_1")
	handle.EXPECT().Succeed(proof).Return(nil)

	var published []string
	f.publisher.ExpectedCalls = nil
	f.publisher.EXPECT().
		PublishCheckoutEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.CheckoutEvent) {
			assert.Equal(t, "sess-1", event.SessionID)
			published = append(published, event.Type)
		}).
		Return(nil)

	f.orderAPI.EXPECT().VerifyPayment(mock.Anything, "backend-token", proof, "B").Return("ORD123", nil)

	_, err := f.service.Pay(context.Background(), f.session)
	require.NoError(t, err)

	view, err := f.service.Complete(context.Background(), f.session, proof)
	require.NoError(t, err)

	assert.Equal(t, entity.CheckoutPhaseComplete, view.Phase)
	assert.Equal(t, "ORD123", view.OrderID)
	assert.Equal(t, "ORD123", f.registry.Workspace(f.session.ID).Orders.Confirmed())
	assert.Equal(t, []string{constants.EventIntentCreated, constants.EventOrderConfirmed}, published)
	f.cart.AssertCalled(t, "Fetch", mock.Anything, f.session)

	// A finished checkout can be started again.
	again := f.begin(t, testAddresses())
	assert.Equal(t, entity.CheckoutPhaseAddressSelection, again.Phase)
	assert.Empty(t, again.OrderID)
}

func TestCheckoutService_VerificationRejected(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withCart()
	f.begin(t, testAddresses())

	proof := entity.PaymentProof{IntentID: "order_1", PaymentID: "pay_1", Signature: "forged"}
	handle := f.expectIntent(t, "order_1")
	handle.EXPECT().Succeed(proof).Return(nil)

	f.orderAPI.EXPECT().
		VerifyPayment(mock.Anything, "backend-token", proof, "B").
		Return("", domainerrors.NewBackendError(400, "Invalid signature", nil))

	_, err := f.service.Pay(context.Background(), f.session)
	require.NoError(t, err)

	_, err = f.service.Complete(context.Background(), f.session, proof)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentVerificationFailed)

	view := f.service.View(context.Background(), f.session)
	assert.Equal(t, entity.CheckoutPhaseAddressSelection, view.Phase)
	assert.Equal(t, domainerrors.ErrPaymentVerificationFailed.Message(), view.LastError)
	assert.Empty(t, f.registry.Workspace(f.session.ID).Orders.Confirmed())
}

func TestCheckoutService_CompleteWithForeignIntent(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withCart()
	f.begin(t, testAddresses())
	f.expectIntent(t, "order_1")

	_, err := f.service.Pay(context.Background(), f.session)
	require.NoError(t, err)

	_, err = f.service.Complete(context.Background(), f.session,
		entity.PaymentProof{IntentID: "order_9", PaymentID: "pay_1", Signature: "sig"})
	assert.ErrorIs(t, err, domainerrors.ErrIntentMismatch)
	assert.Equal(t, entity.CheckoutPhaseAwaitingPayment, f.service.View(context.Background(), f.session).Phase)
}

func TestCheckoutService_SelectAddress(t *testing.T) {
	f := newCheckoutFixture(t)
	f.begin(t, testAddresses())

	view, err := f.service.SelectAddress(context.Background(), f.session, "A")
	require.NoError(t, err)
	assert.Equal(t, "A", view.SelectedAddressID)

	_, err = f.service.SelectAddress(context.Background(), f.session, "Z")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCheckoutService_ViewPreviewsTotals(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withCart()

	view := f.service.View(context.Background(), f.session)

	assert.Equal(t, entity.CheckoutPhaseIdle, view.Phase)
	assert.Equal(t, int64(1180), view.Totals.Total)
	assert.Len(t, view.Cart.Lines, 2)
}

func TestCheckoutService_PayPrefillsDeliveryPhone(t *testing.T) {
	f := newCheckoutFixture(t)
	f.withCart()
	f.begin(t, []entity.Address{
		{ID: "A", Name: "Home", Phone: "9000000001"},
		{ID: "B", Name: "Office", Phone: "9123456780", IsDefault: true},
	})

	handle := mockService.NewMockWidgetHandle(t)
	handle.EXPECT().Options().Return(entity.WidgetOptions{Handle: "h1", IntentID: "order_1", Amount: 1180, Currency: "INR"}).Maybe()

	f.orderAPI.EXPECT().
		CreatePaymentIntent(mock.Anything, "backend-token", int64(1180), "B").
		Return(&entity.PaymentIntent{ID: "order_1", Amount: 1180, Currency: "INR"}, nil)
	f.widget.EXPECT().
		Open(mock.Anything, mock.MatchedBy(func(o entity.WidgetOptions) bool {
			return o.Prefill.Contact == "9123456780" && o.Prefill.Name == "Asha"
		})).
		Return(handle, nil)

	_, err := f.service.Pay(context.Background(), f.session)
	require.NoError(t, err)
}
