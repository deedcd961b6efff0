package payment

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWidget() *hostedWidget {
	return &hostedWidget{cfg: config.PaymentConfig{
		KeyID:        "rzp_test_key",
		MerchantName: "ShopEcom",
		Description:  "Secure Payment",
		ThemeColor:   "#2563eb",
		Currency:     "INR",
	}}
}

func TestHostedWidget_OpenFillsDefaults(t *testing.T) {
	handle, err := newTestWidget().Open(context.Background(), entity.WidgetOptions{
		IntentID: "order_1",
		Amount:   1180,
		Prefill:  entity.Prefill{Name: "Asha"},
	})
	require.NoError(t, err)

	opts := handle.Options()
	assert.NotEmpty(t, opts.Handle)
	assert.Equal(t, opts.Handle, handle.ID())
	assert.Equal(t, "rzp_test_key", opts.KeyID)
	assert.Equal(t, "INR", opts.Currency)
	assert.Equal(t, "ShopEcom", opts.Name)
	assert.Equal(t, "Secure Payment", opts.Description)
	assert.Equal(t, "#2563eb", opts.Theme.Color)
	assert.Equal(t, "Asha", opts.Prefill.Name)
	assert.False(t, handle.Settled())
}

func TestHostedWidget_OpenRejectsIncompleteOptions(t *testing.T) {
	widget := newTestWidget()

	_, err := widget.Open(context.Background(), entity.WidgetOptions{Amount: 100})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = widget.Open(context.Background(), entity.WidgetOptions{IntentID: "order_1"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = widget.Open(ctx, entity.WidgetOptions{IntentID: "order_1", Amount: 100})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWidgetHandle_SettlesOnce(t *testing.T) {
	handle, err := newTestWidget().Open(context.Background(), entity.WidgetOptions{IntentID: "order_1", Amount: 100})
	require.NoError(t, err)

	require.NoError(t, handle.Fail("User cancelled"))
	assert.True(t, handle.Settled())

	err = handle.Succeed(entity.PaymentProof{IntentID: "order_1", PaymentID: "pay_1", Signature: "sig"})
	assert.ErrorIs(t, err, domainerrors.ErrWidgetAlreadySettled)
	assert.ErrorIs(t, handle.Fail("again"), domainerrors.ErrWidgetAlreadySettled)
}

func TestWidgetHandle_SucceedValidatesProof(t *testing.T) {
	handle, err := newTestWidget().Open(context.Background(), entity.WidgetOptions{IntentID: "order_1", Amount: 100})
	require.NoError(t, err)

	err = handle.Succeed(entity.PaymentProof{IntentID: "order_2", PaymentID: "pay_1", Signature: "sig"})
	assert.ErrorIs(t, err, domainerrors.ErrIntentMismatch)

	err = handle.Succeed(entity.PaymentProof{IntentID: "order_1"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.False(t, handle.Settled())

	require.NoError(t, handle.Succeed(entity.PaymentProof{IntentID: "order_1", PaymentID: "pay_1", Signature: "sig"}))
	assert.True(t, handle.Settled())
}

func TestWidgetHandle_ConcurrentSettlement(t *testing.T) {
	handle, err := newTestWidget().Open(context.Background(), entity.WidgetOptions{IntentID: "order_1", Amount: 100})
	require.NoError(t, err)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if handle.Fail("closed") == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestNewHostedWidget_NilPaymentConfig(t *testing.T) {
	widget := NewHostedWidget(&config.Config{})

	handle, err := widget.Open(context.Background(), entity.WidgetOptions{IntentID: "order_1", Amount: 100, Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "USD", handle.Options().Currency)
}
