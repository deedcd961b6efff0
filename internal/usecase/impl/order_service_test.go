package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	api      *mockService.MockOrderAPI
	qrcode   *mockService.MockQRCodeService
	registry *state.Registry
	session  *entity.Session
	service  usecase.OrderUsecase
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	f := &orderFixture{
		api:      mockService.NewMockOrderAPI(t),
		qrcode:   mockService.NewMockQRCodeService(t),
		registry: state.NewRegistry(),
		session:  newTestSession(),
	}
	f.service = NewOrderService(OrderServiceParams{
		API:      f.api,
		QRCode:   f.qrcode,
		Registry: f.registry,
		Logger:   newDiscardLogger(),
	})

	return f
}

func TestOrderService_MyOrders(t *testing.T) {
	f := newOrderFixture(t)
	orders := []entity.Order{{ID: "ORD1", Status: entity.OrderStatusShipped}}

	f.api.EXPECT().ListMyOrders(mock.Anything, "backend-token").Return(orders, nil).Once()
	got, err := f.service.MyOrders(context.Background(), f.session)
	require.NoError(t, err)
	assert.Equal(t, orders, got)

	f.api.EXPECT().ListMyOrders(mock.Anything, "backend-token").Return(nil, domainerrors.ErrBackendUnavailable).Once()
	got, err = f.service.MyOrders(context.Background(), f.session)
	require.NoError(t, err)
	assert.Equal(t, orders, got)

	f.api.EXPECT().ListMyOrders(mock.Anything, "backend-token").
		Return(nil, domainerrors.NewBackendError(401, "jwt expired", nil)).Once()
	_, err = f.service.MyOrders(context.Background(), f.session)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestOrderService_ConfirmationClearedOnLeave(t *testing.T) {
	f := newOrderFixture(t)
	f.registry.Workspace(f.session.ID).Orders.SetConfirmed("ORD123")

	assert.Equal(t, "ORD123", f.service.Confirmation(context.Background(), f.session))
	assert.Equal(t, "ORD123", f.service.Confirmation(context.Background(), f.session))

	f.service.LeaveConfirmation(context.Background(), f.session)
	assert.Empty(t, f.service.Confirmation(context.Background(), f.session))
}

func TestOrderService_TrackingQR(t *testing.T) {
	t.Run("loads the order once", func(t *testing.T) {
		f := newOrderFixture(t)
		png := []byte{0x89, 'P', 'N', 'G'}

		f.api.EXPECT().GetOrder(mock.Anything, "backend-token", "ORD1").Return(&entity.Order{ID: "ORD1"}, nil).Once()
		f.qrcode.EXPECT().GenerateOrderTrackingQR("ORD1").Return(png, nil).Twice()

		got, err := f.service.TrackingQR(context.Background(), f.session, "ORD1")
		require.NoError(t, err)
		assert.Equal(t, png, got)

		_, err = f.service.TrackingQR(context.Background(), f.session, "ORD1")
		require.NoError(t, err)
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newOrderFixture(t)

		f.api.EXPECT().GetOrder(mock.Anything, "backend-token", "nope").
			Return(nil, domainerrors.NewBackendError(404, "Order not found", nil))

		_, err := f.service.TrackingQR(context.Background(), f.session, "nope")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
