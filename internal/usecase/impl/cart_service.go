package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	api      service.CartAPI
	registry *state.Registry
	taxRate  decimal.Decimal
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	API      service.CartAPI
	Registry *state.Registry
	Config   *config.Config
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		api:      params.API,
		registry: params.Registry,
		taxRate:  taxRate(params.Config),
		logger:   params.Logger,
	}
}

// taxRate is the configured checkout tax rate.
func taxRate(cfg *config.Config) decimal.Decimal {
	if cfg == nil || cfg.Checkout == nil {
		return entity.DefaultTaxRate
	}

	return cfg.Checkout.Rate()
}

func (srv *cartService) Fetch(ctx context.Context, session *entity.Session) *usecase.CartView {
	cache := srv.registry.Workspace(session.ID).Cart

	lines, err := srv.api.GetCart(ctx, session.BackendToken)
	if err != nil {
		log(ctx, srv.logger).Warn("Cart read failed, showing an empty cart",
			slog.String("session_id", session.ID),
			slog.Any("error", err),
		)
		cache.Clear()

		return srv.view(cache.Snapshot())
	}

	return srv.view(cache.Replace(lines))
}

func (srv *cartService) Add(ctx context.Context, session *entity.Session, productID string, quantity int) (*usecase.CartView, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	lines, err := srv.api.AddToCart(ctx, session.BackendToken, productID, quantity)
	if err != nil {
		return nil, srv.mutationFailed(ctx, "add", productID, err)
	}

	return srv.view(srv.registry.Workspace(session.ID).Cart.Replace(lines)), nil
}

func (srv *cartService) Increase(ctx context.Context, session *entity.Session, productID string) (*usecase.CartView, error) {
	if err := srv.api.IncreaseQuantity(ctx, session.BackendToken, productID); err != nil {
		return nil, srv.mutationFailed(ctx, "increase", productID, err)
	}

	return srv.Fetch(ctx, session), nil
}

func (srv *cartService) Decrease(ctx context.Context, session *entity.Session, productID string) (*usecase.CartView, error) {
	if err := srv.api.DecreaseQuantity(ctx, session.BackendToken, productID); err != nil {
		return nil, srv.mutationFailed(ctx, "decrease", productID, err)
	}

	return srv.Fetch(ctx, session), nil
}

func (srv *cartService) Remove(ctx context.Context, session *entity.Session, productID string) (*usecase.CartView, error) {
	if err := srv.api.RemoveItem(ctx, session.BackendToken, productID); err != nil {
		return nil, srv.mutationFailed(ctx, "remove", productID, err)
	}

	return srv.Fetch(ctx, session), nil
}

// mutationFailed reports a rejected cart change. The cache is left as it was.
func (srv *cartService) mutationFailed(ctx context.Context, op, productID string, err error) error {
	log(ctx, srv.logger).Error("Cart mutation failed",
		slog.String("op", op),
		slog.String("product_id", productID),
		slog.Any("error", err),
	)

	return domainerrors.NewOperationError(domainerrors.ErrCartMutationFailed, err)
}

func (srv *cartService) view(cart entity.Cart) *usecase.CartView {
	return &usecase.CartView{
		Cart:      cart,
		Totals:    entity.ComputeTotals(cart.Lines, srv.taxRate),
		ItemCount: cart.ItemCount(),
	}
}
