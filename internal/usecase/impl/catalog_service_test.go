package impl

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
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

type catalogFixture struct {
	api     *mockService.MockCatalogAPI
	catalog *state.Catalog
	service usecase.CatalogUsecase
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	f := &catalogFixture{
		api:     mockService.NewMockCatalogAPI(t),
		catalog: state.NewCatalog(),
	}
	f.service = NewCatalogService(CatalogServiceParams{
		API:     f.api,
		Catalog: f.catalog,
		Logger:  newDiscardLogger(),
	})

	return f
}

func TestCatalogService_ListProductsFallsBackToPreviousListing(t *testing.T) {
	f := newCatalogFixture(t)
	query := entity.ProductQuery{Category: "shoes"}
	products := []entity.Product{{ID: "p1", Title: "Runner"}}

	f.api.EXPECT().ListProducts(mock.Anything, "", query).Return(products, nil).Once()
	got, err := f.service.ListProducts(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, products, got)

	f.api.EXPECT().ListProducts(mock.Anything, "", query).Return(nil, domainerrors.ErrBackendUnavailable).Once()
	got, err = f.service.ListProducts(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, products, got)

	other := entity.ProductQuery{Category: "hats"}
	f.api.EXPECT().ListProducts(mock.Anything, "", other).Return(nil, domainerrors.ErrBackendUnavailable).Once()
	_, err = f.service.ListProducts(context.Background(), other)
	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
}

func TestCatalogService_ConcurrentReadsShareOneCall(t *testing.T) {
	f := newCatalogFixture(t)

	release := make(chan struct{})
	var calls atomic.Int32
	f.api.EXPECT().HomeData(mock.Anything).
		RunAndReturn(func(context.Context) (*entity.HomeData, error) {
			calls.Add(1)
			<-release

			return &entity.HomeData{Trending: []entity.Product{{ID: "p1"}}}, nil
		}).
		Maybe()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			home, err := f.service.HomeData(context.Background())
			assert.NoError(t, err)
			assert.Len(t, home.Trending, 1)
		}()
	}
	// Let the callers pile up on the in-flight fetch before it returns.
	for calls.Load() == 0 {
		runtime.Gosched()
	}
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(8))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestCatalogService_GetProductNotFound(t *testing.T) {
	f := newCatalogFixture(t)
	f.catalog.ReplaceProduct(entity.Product{ID: "gone"})

	f.api.EXPECT().GetProduct(mock.Anything, "", "gone").Return(nil, domainerrors.NewBackendError(404, "Product not found", nil))

	_, err := f.service.GetProduct(context.Background(), "gone")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.ErrorContains(t, err, "product does not exist")

	_, ok := f.catalog.Product("gone")
	assert.False(t, ok)
}

func TestCatalogService_GetReviewsIsNonFatal(t *testing.T) {
	f := newCatalogFixture(t)
	reviews := []entity.Review{{ID: "r1", Rating: 5}}
	f.catalog.ReplaceReviews("p1", reviews)

	f.api.EXPECT().GetReviews(mock.Anything, "p1").Return(nil, domainerrors.ErrBackendUnavailable)

	assert.Equal(t, reviews, f.service.GetReviews(context.Background(), "p1"))
}

func TestCatalogService_AddReviewRefreshesProductAndReviews(t *testing.T) {
	f := newCatalogFixture(t)
	session := newTestSession()
	input := entity.ReviewInput{ProductID: "p1", Rating: 4, Comment: "Good"}

	f.api.EXPECT().AddReview(mock.Anything, "backend-token", input).Return(nil)
	f.api.EXPECT().GetProduct(mock.Anything, "", "p1").Return(&entity.Product{ID: "p1", AverageRating: 4.5, ReviewCount: 2}, nil)
	f.api.EXPECT().GetReviews(mock.Anything, "p1").Return([]entity.Review{{ID: "r1"}, {ID: "r2"}}, nil)

	reviews, err := f.service.AddReview(context.Background(), session, input)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	product, ok := f.catalog.Product("p1")
	require.True(t, ok)
	assert.Equal(t, 2, product.ReviewCount)
}

func TestCatalogService_SearchSuggestions(t *testing.T) {
	f := newCatalogFixture(t)

	assert.Empty(t, f.service.SearchSuggestions(context.Background(), "s"))
	assert.Empty(t, f.service.SearchSuggestions(context.Background(), "  a "))

	f.api.EXPECT().SearchSuggestions(mock.Anything, "sh").Return([]string{"shoes", "shirts"}, nil).Once()
	assert.Equal(t, []string{"shoes", "shirts"}, f.service.SearchSuggestions(context.Background(), "sh"))

	f.api.EXPECT().SearchSuggestions(mock.Anything, "sho").Return(nil, domainerrors.ErrBackendUnavailable).Once()
	assert.Equal(t, []string{}, f.service.SearchSuggestions(context.Background(), "sho"))
}
