package state

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkoutAddresses = []entity.Address{
	{ID: "A", Name: "Home"},
	{ID: "B", Name: "Office", IsDefault: true},
}

func openAwaiting(t *testing.T, intentID string) (*Checkout, *mockService.MockWidgetHandle) {
	t.Helper()

	c := NewCheckout()
	require.NoError(t, c.Open(checkoutAddresses))
	addressID, err := c.StartIntent(entity.Totals{Total: 1180})
	require.NoError(t, err)
	require.Equal(t, "B", addressID)

	handle := mockService.NewMockWidgetHandle(t)
	require.NoError(t, c.AwaitPayment(&entity.PaymentIntent{ID: intentID, Amount: 1180, Currency: "INR"}, handle))

	return c, handle
}

func TestCheckout_OpenSelectsDefault(t *testing.T) {
	c := NewCheckout()
	assert.Equal(t, entity.CheckoutPhaseIdle, c.Phase())

	require.NoError(t, c.Open(checkoutAddresses))

	view := c.View()
	assert.Equal(t, entity.CheckoutPhaseAddressSelection, view.Phase)
	assert.Equal(t, "B", view.SelectedAddressID)
	assert.Len(t, view.Addresses, 2)
}

func TestCheckout_SelectAndStartIntent(t *testing.T) {
	c := NewCheckout()
	require.NoError(t, c.Open(nil))

	_, err := c.StartIntent(entity.Totals{Total: 100})
	require.ErrorIs(t, err, domainerrors.ErrNoAddressSelected)
	assert.Equal(t, domainerrors.ErrNoAddressSelected.Message(), c.View().LastError)

	c.RefreshAddresses(checkoutAddresses)
	assert.Equal(t, "B", c.View().SelectedAddressID)

	require.ErrorIs(t, c.Select("Z"), domainerrors.ErrNotFound)
	require.NoError(t, c.Select("A"))

	addressID, err := c.StartIntent(entity.Totals{Total: 100})
	require.NoError(t, err)
	assert.Equal(t, "A", addressID)
	assert.Equal(t, entity.CheckoutPhaseCreatingIntent, c.Phase())

	assert.ErrorIs(t, c.Open(checkoutAddresses), domainerrors.ErrCheckoutInProgress)
	assert.ErrorIs(t, c.Select("B"), domainerrors.ErrCheckoutInProgress)
}

func TestCheckout_RefreshAddressesKeepsSelection(t *testing.T) {
	c := NewCheckout()
	require.NoError(t, c.Open(checkoutAddresses))
	require.NoError(t, c.Select("A"))

	c.RefreshAddresses([]entity.Address{{ID: "A"}, {ID: "C", IsDefault: true}})
	assert.Equal(t, "A", c.View().SelectedAddressID)

	c.RefreshAddresses([]entity.Address{{ID: "C"}, {ID: "D", IsDefault: true}})
	assert.Equal(t, "D", c.View().SelectedAddressID)
}

func TestCheckout_ProofCompletesAttempt(t *testing.T) {
	c, handle := openAwaiting(t, "order_1")
	proof := entity.PaymentProof{IntentID: "order_1", PaymentID: "pay_1", Signature: "sig"}

	handle.EXPECT().Options().Return(entity.WidgetOptions{IntentID: "order_1", Amount: 1180})
	view := c.View()
	require.NotNil(t, view.Widget)
	assert.Equal(t, int64(1180), view.Widget.Amount)

	handle.EXPECT().Succeed(proof).Return(nil)
	addressID, err := c.AcceptProof(proof)
	require.NoError(t, err)
	assert.Equal(t, "B", addressID)
	assert.Equal(t, entity.CheckoutPhaseVerifying, c.Phase())

	require.NoError(t, c.Complete("ORD123"))
	view = c.View()
	assert.Equal(t, entity.CheckoutPhaseComplete, view.Phase)
	assert.Equal(t, "ORD123", view.OrderID)
	assert.Nil(t, c.Intent())

	_, err = c.AcceptProof(proof)
	assert.ErrorIs(t, err, domainerrors.ErrWidgetAlreadySettled)

	require.NoError(t, c.Open(checkoutAddresses))
	assert.Empty(t, c.View().OrderID)
}

func TestCheckout_FailureReturnsToSelection(t *testing.T) {
	c, handle := openAwaiting(t, "order_1")

	handle.EXPECT().Fail("User cancelled").Return(nil)
	require.NoError(t, c.AcceptFailure("", "User cancelled"))

	view := c.View()
	assert.Equal(t, entity.CheckoutPhaseAddressSelection, view.Phase)
	assert.Equal(t, "User cancelled", view.LastError)
	assert.Nil(t, view.Widget)
	assert.Equal(t, "B", view.SelectedAddressID)

	assert.ErrorIs(t, c.AcceptFailure("order_1", "again"), domainerrors.ErrWidgetAlreadySettled)
	assert.ErrorIs(t, c.AcceptFailure("order_9", "other"), domainerrors.ErrInvalidCheckoutPhase)
}

func TestCheckout_ForeignIntentRejected(t *testing.T) {
	c, _ := openAwaiting(t, "order_1")

	_, err := c.AcceptProof(entity.PaymentProof{IntentID: "order_2", PaymentID: "p", Signature: "s"})
	assert.ErrorIs(t, err, domainerrors.ErrIntentMismatch)
	assert.Equal(t, entity.CheckoutPhaseAwaitingPayment, c.Phase())
}

func TestCheckout_AbortKeepsAddresses(t *testing.T) {
	c := NewCheckout()
	require.NoError(t, c.Open(checkoutAddresses))
	_, err := c.StartIntent(entity.Totals{Total: 1180})
	require.NoError(t, err)

	c.Abort("Could not start payment")

	view := c.View()
	assert.Equal(t, entity.CheckoutPhaseAddressSelection, view.Phase)
	assert.Equal(t, "Could not start payment", view.LastError)
	assert.Equal(t, int64(1180), view.Totals.Total)
	assert.ErrorIs(t, c.Complete("ORD1"), domainerrors.ErrInvalidCheckoutPhase)
}
