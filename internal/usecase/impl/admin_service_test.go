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

type adminFixture struct {
	api        *mockService.MockAdminAPI
	catalogAPI *mockService.MockCatalogAPI
	catalog    *state.Catalog
	registry   *state.Registry
	session    *entity.Session
	service    usecase.AdminUsecase
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	session := newTestSession()
	session.User.Role = entity.RoleAdmin
	f := &adminFixture{
		api:        mockService.NewMockAdminAPI(t),
		catalogAPI: mockService.NewMockCatalogAPI(t),
		catalog:    state.NewCatalog(),
		registry:   state.NewRegistry(),
		session:    session,
	}
	f.service = NewAdminService(AdminServiceParams{
		API:        f.api,
		CatalogAPI: f.catalogAPI,
		Catalog:    f.catalog,
		Registry:   f.registry,
		Logger:     newDiscardLogger(),
	})

	return f
}

func (f *adminFixture) admin() *state.Admin {
	return f.registry.Workspace(f.session.ID).Admin
}

func TestAdminService_DeleteUser(t *testing.T) {
	t.Run("removes locally", func(t *testing.T) {
		f := newAdminFixture(t)
		f.admin().ReplaceUsers([]entity.User{{ID: "u1"}, {ID: "u2"}})

		f.api.EXPECT().DeleteUser(mock.Anything, "backend-token", "u2").Return(nil)

		users, err := f.service.DeleteUser(context.Background(), f.session, "u2")
		require.NoError(t, err)
		assert.Equal(t, []entity.User{{ID: "u1"}}, users)
	})

	t.Run("reconciles on failure", func(t *testing.T) {
		f := newAdminFixture(t)
		f.admin().ReplaceUsers([]entity.User{{ID: "u1"}, {ID: "u2"}})

		f.api.EXPECT().DeleteUser(mock.Anything, "backend-token", "u2").Return(domainerrors.ErrBackendUnavailable)
		f.api.EXPECT().ListUsers(mock.Anything, "backend-token").Return([]entity.User{{ID: "u1"}, {ID: "u2"}}, nil)

		_, err := f.service.DeleteUser(context.Background(), f.session, "u2")
		assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
		assert.Len(t, f.admin().Users(), 2)
	})
}

func TestAdminService_DeleteReviewReconciles(t *testing.T) {
	f := newAdminFixture(t)
	f.admin().ReplaceReviews([]entity.Review{{ID: "r1"}, {ID: "r2"}})

	f.api.EXPECT().DeleteReview(mock.Anything, "backend-token", "r1").Return(domainerrors.ErrBackendRejected)
	f.api.EXPECT().ListAllReviews(mock.Anything, "backend-token").Return([]entity.Review{{ID: "r1"}, {ID: "r2"}}, nil)

	_, err := f.service.DeleteReview(context.Background(), f.session, "r1")
	assert.ErrorIs(t, err, domainerrors.ErrBackendRejected)
	assert.Len(t, f.admin().Reviews(), 2)
}

func TestAdminService_DeleteProductForgetsCatalogEntry(t *testing.T) {
	f := newAdminFixture(t)
	f.catalog.ReplaceProduct(entity.Product{ID: "p1"})
	f.admin().ReplaceProducts([]entity.Product{{ID: "p1"}, {ID: "p2"}})

	f.api.EXPECT().DeleteProduct(mock.Anything, "backend-token", "p1").Return(nil)
	f.catalogAPI.EXPECT().ListProducts(mock.Anything, "backend-token", entity.ProductQuery{}).
		Return([]entity.Product{{ID: "p2"}}, nil)

	products, err := f.service.DeleteProduct(context.Background(), f.session, "p1")
	require.NoError(t, err)
	assert.Equal(t, []entity.Product{{ID: "p2"}}, products)

	_, ok := f.catalog.Product("p1")
	assert.False(t, ok)
}

func TestAdminService_UpdateProductRefreshesCatalog(t *testing.T) {
	f := newAdminFixture(t)
	input := entity.ProductInput{Title: "Runner 2", Price: 1200, Category: "shoes"}

	f.api.EXPECT().UpdateProduct(mock.Anything, "backend-token", "p1", input).
		Return(&entity.Product{ID: "p1", Title: "Runner 2", Price: 1200}, nil)
	f.catalogAPI.EXPECT().ListProducts(mock.Anything, "backend-token", entity.ProductQuery{}).
		Return([]entity.Product{{ID: "p1", Title: "Runner 2"}}, nil)

	_, err := f.service.UpdateProduct(context.Background(), f.session, "p1", input)
	require.NoError(t, err)

	product, ok := f.catalog.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "Runner 2", product.Title)
}

func TestAdminService_ProductForEditExpiredSession(t *testing.T) {
	f := newAdminFixture(t)

	f.catalogAPI.EXPECT().GetProduct(mock.Anything, "backend-token", "p1").
		Return(nil, domainerrors.NewBackendError(401, "jwt expired", nil))

	_, err := f.service.ProductForEdit(context.Background(), f.session, "p1")
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestAdminService_UpdateOrderStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		f := newAdminFixture(t)

		_, err := f.service.UpdateOrderStatus(context.Background(), f.session, "ORD1", entity.OrderStatus("lost"))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("refetches orders", func(t *testing.T) {
		f := newAdminFixture(t)
		shipped := []entity.Order{{ID: "ORD1", Status: entity.OrderStatusShipped}}

		f.api.EXPECT().UpdateOrderStatus(mock.Anything, "backend-token", "ORD1", entity.OrderStatusShipped).Return(nil)
		f.api.EXPECT().ListAllOrders(mock.Anything, "backend-token").Return(shipped, nil)

		orders, err := f.service.UpdateOrderStatus(context.Background(), f.session, "ORD1", entity.OrderStatusShipped)
		require.NoError(t, err)
		assert.Equal(t, shipped, orders)
	})
}

func TestAdminService_DashboardStatsFallback(t *testing.T) {
	f := newAdminFixture(t)

	f.api.EXPECT().DashboardSummary(mock.Anything, "backend-token").Return(nil, domainerrors.ErrBackendUnavailable).Once()
	assert.Equal(t, &entity.DashboardStats{}, f.service.DashboardStats(context.Background(), f.session))

	stats := &entity.DashboardStats{TotalUsers: 3, TotalOrders: 7}
	f.api.EXPECT().DashboardSummary(mock.Anything, "backend-token").Return(stats, nil).Once()
	assert.Equal(t, stats, f.service.DashboardStats(context.Background(), f.session))

	f.api.EXPECT().DashboardSummary(mock.Anything, "backend-token").Return(nil, domainerrors.ErrBackendUnavailable).Once()
	assert.Equal(t, stats, f.service.DashboardStats(context.Background(), f.session))
}

func TestAdminService_ListReadsServePreviousOnFailure(t *testing.T) {
	t.Run("users", func(t *testing.T) {
		f := newAdminFixture(t)
		f.admin().ReplaceUsers([]entity.User{{ID: "u1"}, {ID: "u2"}})
		f.api.EXPECT().ListUsers(mock.Anything, "backend-token").Return(nil, domainerrors.ErrBackendUnavailable)

		got, err := f.service.FetchUsers(context.Background(), f.session)
		require.NoError(t, err)
		assert.Equal(t, []entity.User{{ID: "u1"}, {ID: "u2"}}, got)
	})

	t.Run("products", func(t *testing.T) {
		f := newAdminFixture(t)
		f.admin().ReplaceProducts([]entity.Product{{ID: "p1"}})
		f.catalogAPI.EXPECT().ListProducts(mock.Anything, "backend-token", entity.ProductQuery{}).
			Return(nil, domainerrors.ErrBackendUnavailable)

		got, err := f.service.FetchProducts(context.Background(), f.session)
		require.NoError(t, err)
		assert.Equal(t, []entity.Product{{ID: "p1"}}, got)
	})

	t.Run("orders", func(t *testing.T) {
		f := newAdminFixture(t)
		f.admin().ReplaceOrders([]entity.Order{{ID: "o1"}})
		f.api.EXPECT().ListAllOrders(mock.Anything, "backend-token").Return(nil, domainerrors.ErrBackendUnavailable)

		got, err := f.service.FetchOrders(context.Background(), f.session)
		require.NoError(t, err)
		assert.Equal(t, []entity.Order{{ID: "o1"}}, got)
	})

	t.Run("reviews empty before first read", func(t *testing.T) {
		f := newAdminFixture(t)
		f.api.EXPECT().ListAllReviews(mock.Anything, "backend-token").Return(nil, domainerrors.ErrBackendUnavailable)

		got, err := f.service.FetchReviews(context.Background(), f.session)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("expired session propagates", func(t *testing.T) {
		f := newAdminFixture(t)
		f.admin().ReplaceUsers([]entity.User{{ID: "u1"}})
		f.api.EXPECT().ListUsers(mock.Anything, "backend-token").Return(nil, domainerrors.ErrSessionExpired)

		_, err := f.service.FetchUsers(context.Background(), f.session)
		assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	})
}
