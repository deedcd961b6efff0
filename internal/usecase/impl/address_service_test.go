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

type addressFixture struct {
	api      *mockService.MockAddressAPI
	registry *state.Registry
	session  *entity.Session
	service  usecase.AddressUsecase
}

func newAddressFixture(t *testing.T) *addressFixture {
	t.Helper()

	f := &addressFixture{
		api:      mockService.NewMockAddressAPI(t),
		registry: state.NewRegistry(),
		session:  newTestSession(),
	}
	f.service = NewAddressService(AddressServiceParams{
		API:      f.api,
		Registry: f.registry,
		Logger:   newDiscardLogger(),
	})

	return f
}

func TestAddressService_AddIsPessimistic(t *testing.T) {
	f := newAddressFixture(t)
	book := f.registry.Workspace(f.session.ID).Addresses
	book.Replace(testAddresses())

	fields := entity.AddressFields{Name: "New", Phone: "9876543210", Street: "1 Road", City: "Goa", State: "GA", Pincode: "403001"}
	f.api.EXPECT().
		AddAddress(mock.Anything, "backend-token", mock.MatchedBy(func(in entity.AddressFields) bool {
			return in.Country == entity.DefaultCountry
		})).
		Return(nil, domainerrors.NewBackendError(400, "pincode invalid", nil))

	_, err := f.service.Add(context.Background(), f.session, fields)
	assert.ErrorIs(t, err, domainerrors.ErrAddressMutationFailed)
	assert.Equal(t, testAddresses(), book.Snapshot())
}

func TestAddressService_SetDefaultUsesServerList(t *testing.T) {
	f := newAddressFixture(t)
	server := []entity.Address{{ID: "A", IsDefault: true}, {ID: "B"}}
	f.api.EXPECT().SetDefaultAddress(mock.Anything, "backend-token", "A").Return(server, nil)

	list, err := f.service.SetDefault(context.Background(), f.session, "A")
	require.NoError(t, err)
	assert.Equal(t, server, list)
	assert.Equal(t, server, f.registry.Workspace(f.session.ID).Addresses.Snapshot())
}

func TestAddressService_RemoveReconcilesOnFailure(t *testing.T) {
	f := newAddressFixture(t)
	book := f.registry.Workspace(f.session.ID).Addresses
	book.Replace(testAddresses())

	f.api.EXPECT().
		DeleteAddress(mock.Anything, "backend-token", "A").
		Run(func(_ context.Context, _ string, _ string) {
			// The removal is visible while the request is in flight.
			_, ok := entity.FindAddress(book.Snapshot(), "A")
			assert.False(t, ok)
		}).
		Return(nil, domainerrors.NewBackendError(0, "", assert.AnError))
	f.api.EXPECT().ListAddresses(mock.Anything, "backend-token").Return(testAddresses(), nil)

	list, err := f.service.Remove(context.Background(), f.session, "A")
	assert.Nil(t, list)
	assert.ErrorIs(t, err, domainerrors.ErrAddressMutationFailed)
	assert.Equal(t, testAddresses(), book.Snapshot())
}

func TestAddressService_RemoveSuccess(t *testing.T) {
	f := newAddressFixture(t)
	f.registry.Workspace(f.session.ID).Addresses.Replace(testAddresses())

	remaining := []entity.Address{{ID: "B", IsDefault: true}}
	f.api.EXPECT().DeleteAddress(mock.Anything, "backend-token", "A").Return(remaining, nil)

	list, err := f.service.Remove(context.Background(), f.session, "A")
	require.NoError(t, err)
	assert.Equal(t, remaining, list)
}

func TestAddressService_EditRefreshesOpenCheckout(t *testing.T) {
	f := newAddressFixture(t)
	ws := f.registry.Workspace(f.session.ID)
	require.NoError(t, ws.Checkout.Open(testAddresses()))
	require.NoError(t, ws.Checkout.Select("A"))

	// A stays: the selection is kept.
	f.api.EXPECT().UpdateAddress(mock.Anything, "backend-token", "B", mock.Anything).
		Return([]entity.Address{{ID: "A"}, {ID: "B", IsDefault: true}, {ID: "C"}}, nil).Once()
	_, err := f.service.Update(context.Background(), f.session, "B", entity.AddressFields{Name: "Office"})
	require.NoError(t, err)
	assert.Equal(t, "A", ws.Checkout.View().SelectedAddressID)

	// A is gone: the default is selected again.
	f.api.EXPECT().DeleteAddress(mock.Anything, "backend-token", "A").
		Return([]entity.Address{{ID: "B", IsDefault: true}, {ID: "C"}}, nil).Once()
	_, err = f.service.Remove(context.Background(), f.session, "A")
	require.NoError(t, err)
	assert.Equal(t, "B", ws.Checkout.View().SelectedAddressID)
}

func TestAddressService_ListServesPreviousOnFailure(t *testing.T) {
	f := newAddressFixture(t)
	book := f.registry.Workspace(f.session.ID).Addresses
	book.Replace(testAddresses())

	f.api.EXPECT().ListAddresses(mock.Anything, "backend-token").Return(nil, domainerrors.ErrBackendUnavailable).Once()
	got, err := f.service.List(context.Background(), f.session)
	require.NoError(t, err)
	assert.Equal(t, testAddresses(), got)

	f.api.EXPECT().ListAddresses(mock.Anything, "backend-token").Return(nil, domainerrors.ErrSessionExpired).Once()
	_, err = f.service.List(context.Background(), f.session)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}
