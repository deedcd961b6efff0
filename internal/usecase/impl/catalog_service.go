package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// catalogService implements the CatalogUsecase interface. Identical
// concurrent reads share one backend call.
type catalogService struct {
	api     service.CatalogAPI
	catalog *state.Catalog
	group   singleflight.Group
	logger  *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	API     service.CatalogAPI
	Catalog *state.Catalog
	Logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		api:     params.API,
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

func (srv *catalogService) ListProducts(ctx context.Context, query entity.ProductQuery) ([]entity.Product, error) {
	key := query.Key()

	products, err := do(&srv.group, "products:"+key, func() ([]entity.Product, error) {
		list, err := srv.api.ListProducts(ctx, "", query)
		if err != nil {
			return nil, err
		}
		srv.catalog.ReplaceListing(key, list)

		return list, nil
	})
	if err == nil {
		return products, nil
	}

	previous, ok := srv.catalog.Listing(key)
	if !ok {
		return nil, errors.WithMessage(err, "list products")
	}
	log(ctx, srv.logger).Warn("Product listing read failed, serving previous listing",
		slog.String("query", key),
		slog.Any("error", err),
	)

	return previous, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := do(&srv.group, "product:"+productID, func() (*entity.Product, error) {
		p, err := srv.api.GetProduct(ctx, "", productID)
		if err != nil {
			return nil, err
		}
		srv.catalog.ReplaceProduct(*p)

		return p, nil
	})
	if errors.Is(err, domainerrors.ErrNotFound) {
		srv.catalog.ForgetProduct(productID)

		return nil, errors.Wrap(domainerrors.ErrNotFound.WithDetails("product does not exist"), err.Error())
	}
	if err != nil {
		return nil, errors.WithMessage(err, "get product")
	}

	return product, nil
}

func (srv *catalogService) GetReviews(ctx context.Context, productID string) []entity.Review {
	reviews, err := srv.fetchReviews(ctx, productID)
	if err != nil {
		log(ctx, srv.logger).Warn("Review read failed, serving previous reviews",
			slog.String("product_id", productID),
			slog.Any("error", err),
		)

		return srv.catalog.Reviews(productID)
	}

	return reviews
}

func (srv *catalogService) fetchReviews(ctx context.Context, productID string) ([]entity.Review, error) {
	return do(&srv.group, "reviews:"+productID, func() ([]entity.Review, error) {
		list, err := srv.api.GetReviews(ctx, productID)
		if err != nil {
			return nil, err
		}
		srv.catalog.ReplaceReviews(productID, list)

		return list, nil
	})
}

func (srv *catalogService) AddReview(ctx context.Context, session *entity.Session, input entity.ReviewInput) ([]entity.Review, error) {
	if err := srv.api.AddReview(ctx, session.BackendToken, input); err != nil {
		return nil, errors.WithMessage(err, "add review")
	}

	// Rating aggregates are computed by the backend.
	if _, err := srv.GetProduct(ctx, input.ProductID); err != nil {
		log(ctx, srv.logger).Warn("Product refresh after review failed",
			slog.String("product_id", input.ProductID),
			slog.Any("error", err),
		)
	}

	return srv.GetReviews(ctx, input.ProductID), nil
}

func (srv *catalogService) HomeData(ctx context.Context) (*entity.HomeData, error) {
	home, err := do(&srv.group, "home", func() (*entity.HomeData, error) {
		data, err := srv.api.HomeData(ctx)
		if err != nil {
			return nil, err
		}
		srv.catalog.ReplaceHome(data)

		return data, nil
	})
	if err == nil {
		return home, nil
	}

	previous, ok := srv.catalog.Home()
	if !ok {
		return nil, errors.WithMessage(err, "home data")
	}
	log(ctx, srv.logger).Warn("Home data read failed, serving previous data", slog.Any("error", err))

	return previous, nil
}

func (srv *catalogService) SearchSuggestions(ctx context.Context, keyword string) []string {
	keyword = strings.TrimSpace(keyword)
	if len([]rune(keyword)) < usecase.MinSuggestionKeyword {
		return []string{}
	}

	suggestions, err := do(&srv.group, "suggest:"+strings.ToLower(keyword), func() ([]string, error) {
		return srv.api.SearchSuggestions(ctx, keyword)
	})
	if err != nil {
		log(ctx, srv.logger).Warn("Search suggestions failed", slog.String("keyword", keyword), slog.Any("error", err))

		return []string{}
	}
	if suggestions == nil {
		return []string{}
	}

	return suggestions
}

// do runs fn once per key among concurrent callers.
func do[T any](group *singleflight.Group, key string, fn func() (T, error)) (T, error) {
	v, err, _ := group.Do(key, func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T

		return zero, err
	}

	return v.(T), nil
}
