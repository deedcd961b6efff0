package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_Toggle(t *testing.T) {
	api := mockService.NewMockWishlistAPI(t)
	registry := state.NewRegistry()
	session := newTestSession()
	srv := NewWishlistService(WishlistServiceParams{API: api, Registry: registry, Logger: newDiscardLogger()})

	wished := []entity.Product{{ID: "p1"}}
	api.EXPECT().ToggleWishlist(mock.Anything, "backend-token", "p1").Return("Added to wishlist", nil)
	api.EXPECT().GetWishlist(mock.Anything, "backend-token").Return(wished, nil)

	message, list, err := srv.Toggle(context.Background(), session, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Added to wishlist", message)
	assert.Equal(t, wished, list)
	assert.True(t, registry.Workspace(session.ID).Wishlist.Contains("p1"))
}

func TestWishlistService_ToggleFailureKeepsCache(t *testing.T) {
	api := mockService.NewMockWishlistAPI(t)
	registry := state.NewRegistry()
	session := newTestSession()
	registry.Workspace(session.ID).Wishlist.Replace([]entity.Product{{ID: "p1"}})
	srv := NewWishlistService(WishlistServiceParams{API: api, Registry: registry, Logger: newDiscardLogger()})

	api.EXPECT().ToggleWishlist(mock.Anything, "backend-token", "p1").Return("", domainerrors.ErrBackendUnavailable)

	_, _, err := srv.Toggle(context.Background(), session, "p1")
	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
	assert.True(t, registry.Workspace(session.ID).Wishlist.Contains("p1"))
}

func TestWishlistService_FetchDegrades(t *testing.T) {
	api := mockService.NewMockWishlistAPI(t)
	registry := state.NewRegistry()
	session := newTestSession()
	registry.Workspace(session.ID).Wishlist.Replace([]entity.Product{{ID: "p2"}})
	srv := NewWishlistService(WishlistServiceParams{API: api, Registry: registry, Logger: newDiscardLogger()})

	api.EXPECT().GetWishlist(mock.Anything, "backend-token").Return(nil, domainerrors.ErrBackendUnavailable)

	list, err := srv.Fetch(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, []entity.Product{{ID: "p2"}}, list)
}
