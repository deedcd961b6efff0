package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	api      service.WishlistAPI
	registry *state.Registry
	logger   *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	API      service.WishlistAPI
	Registry *state.Registry
	Logger   *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		api:      params.API,
		registry: params.Registry,
		logger:   params.Logger,
	}
}

func (srv *wishlistService) Fetch(ctx context.Context, session *entity.Session) ([]entity.Product, error) {
	cache := srv.registry.Workspace(session.ID).Wishlist

	list, err := srv.api.GetWishlist(ctx, session.BackendToken)
	if err != nil {
		if err := degradeRead(ctx, srv.logger, "wishlist", err); err != nil {
			return nil, errors.WithMessage(err, "get wishlist")
		}

		return cache.Snapshot(), nil
	}

	return cache.Replace(list), nil
}

func (srv *wishlistService) Toggle(ctx context.Context, session *entity.Session, productID string) (string, []entity.Product, error) {
	message, err := srv.api.ToggleWishlist(ctx, session.BackendToken, productID)
	if err != nil {
		log(ctx, srv.logger).Error("Wishlist toggle failed", slog.String("product_id", productID), slog.Any("error", err))

		return "", nil, errors.WithMessage(err, "toggle wishlist")
	}

	list, err := srv.Fetch(ctx, session)
	if err != nil {
		return "", nil, err
	}

	return message, list, nil
}
