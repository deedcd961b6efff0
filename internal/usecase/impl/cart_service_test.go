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

type cartFixture struct {
	api      *mockService.MockCartAPI
	registry *state.Registry
	session  *entity.Session
	service  usecase.CartUsecase
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	f := &cartFixture{
		api:      mockService.NewMockCartAPI(t),
		registry: state.NewRegistry(),
		session:  newTestSession(),
	}
	f.service = NewCartService(CartServiceParams{
		API:      f.api,
		Registry: f.registry,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return f
}

func line(productID string, quantity int, price float64) entity.CartLine {
	return entity.CartLine{ProductID: productID, Quantity: quantity, PriceAtAdd: price}
}

func TestCartService_FetchReplacesCache(t *testing.T) {
	f := newCartFixture(t)
	f.api.EXPECT().GetCart(mock.Anything, "backend-token").
		Return([]entity.CartLine{line("p1", 2, 500), line("p2", 0, 100)}, nil)

	view := f.service.Fetch(context.Background(), f.session)

	require.Len(t, view.Cart.Lines, 1)
	assert.Equal(t, 2, view.ItemCount)
	assert.Equal(t, int64(1180), view.Totals.Total)
	assert.Equal(t, view.Cart, f.registry.Workspace(f.session.ID).Cart.Snapshot())
}

func TestCartService_FetchFailureDegradesToEmptyCart(t *testing.T) {
	f := newCartFixture(t)
	f.registry.Workspace(f.session.ID).Cart.Replace([]entity.CartLine{line("p1", 1, 100)})
	f.api.EXPECT().GetCart(mock.Anything, "backend-token").
		Return(nil, domainerrors.NewBackendError(0, "", assert.AnError))

	view := f.service.Fetch(context.Background(), f.session)

	assert.True(t, view.Cart.IsEmpty())
	assert.Equal(t, int64(0), view.Totals.Total)
}

func TestCartService_AddReplacesWithReturnedCart(t *testing.T) {
	f := newCartFixture(t)
	f.api.EXPECT().AddToCart(mock.Anything, "backend-token", "p1", 3).
		Return([]entity.CartLine{line("p1", 3, 100)}, nil)

	view, err := f.service.Add(context.Background(), f.session, "p1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, view.ItemCount)
}

func TestCartService_AddRejectsZeroQuantity(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.service.Add(context.Background(), f.session, "p1", 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_QuantityComesFromServer(t *testing.T) {
	f := newCartFixture(t)

	f.api.EXPECT().IncreaseQuantity(mock.Anything, "backend-token", "p1").Return(nil).Once()
	f.api.EXPECT().GetCart(mock.Anything, "backend-token").Return([]entity.CartLine{line("p1", 2, 100)}, nil).Once()

	view, err := f.service.Increase(context.Background(), f.session, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, view.Cart.Lines[0].Quantity)

	// Decrementing the last unit is the server's decision; it drops the line.
	f.api.EXPECT().DecreaseQuantity(mock.Anything, "backend-token", "p1").Return(nil).Once()
	f.api.EXPECT().GetCart(mock.Anything, "backend-token").Return([]entity.CartLine{}, nil).Once()

	view, err = f.service.Decrease(context.Background(), f.session, "p1")
	require.NoError(t, err)
	assert.True(t, view.Cart.IsEmpty())
}

func TestCartService_MutationFailureLeavesCacheUntouched(t *testing.T) {
	f := newCartFixture(t)
	before := f.registry.Workspace(f.session.ID).Cart.Replace([]entity.CartLine{line("p1", 1, 100)})

	f.api.EXPECT().RemoveItem(mock.Anything, "backend-token", "p1").
		Return(domainerrors.NewBackendError(0, "", assert.AnError))

	view, err := f.service.Remove(context.Background(), f.session, "p1")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrCartMutationFailed)
	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
	assert.Equal(t, before, f.registry.Workspace(f.session.ID).Cart.Snapshot())
}

func TestCartService_RemoveRefetches(t *testing.T) {
	f := newCartFixture(t)

	f.api.EXPECT().RemoveItem(mock.Anything, "backend-token", "p1").Return(nil)
	f.api.EXPECT().GetCart(mock.Anything, "backend-token").Return([]entity.CartLine{line("p2", 1, 50)}, nil)

	view, err := f.service.Remove(context.Background(), f.session, "p1")
	require.NoError(t, err)
	require.Len(t, view.Cart.Lines, 1)
	assert.Equal(t, "p2", view.Cart.Lines[0].ProductID)
}
