package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/state"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	api        service.AdminAPI
	catalogAPI service.CatalogAPI
	catalog    *state.Catalog
	registry   *state.Registry
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	API        service.AdminAPI
	CatalogAPI service.CatalogAPI
	Catalog    *state.Catalog
	Registry   *state.Registry
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		api:        params.API,
		catalogAPI: params.CatalogAPI,
		catalog:    params.Catalog,
		registry:   params.Registry,
		logger:     params.Logger,
	}
}

func (srv *adminService) admin(session *entity.Session) *state.Admin {
	return srv.registry.Workspace(session.ID).Admin
}

// --- Users ---

func (srv *adminService) FetchUsers(ctx context.Context, session *entity.Session) ([]entity.User, error) {
	list, err := srv.loadUsers(ctx, session)
	if err != nil {
		if err := degradeRead(ctx, srv.logger, "admin_users", err); err != nil {
			return nil, err
		}

		return srv.admin(session).Users(), nil
	}

	return list, nil
}

func (srv *adminService) loadUsers(ctx context.Context, session *entity.Session) ([]entity.User, error) {
	list, err := srv.api.ListUsers(ctx, session.BackendToken)
	if err != nil {
		return nil, errors.WithMessage(err, "list users")
	}

	return srv.admin(session).ReplaceUsers(list), nil
}

func (srv *adminService) DeleteUser(ctx context.Context, session *entity.Session, userID string) ([]entity.User, error) {
	srv.admin(session).RemoveUserLocal(userID)

	if err := srv.api.DeleteUser(ctx, session.BackendToken, userID); err != nil {
		srv.reconcile(ctx, "users", userID, err, func() error {
			_, err := srv.loadUsers(ctx, session)

			return err
		})

		return nil, errors.WithMessage(err, "delete user")
	}

	return srv.admin(session).Users(), nil
}

// --- Products ---

func (srv *adminService) FetchProducts(ctx context.Context, session *entity.Session) ([]entity.Product, error) {
	list, err := srv.loadProducts(ctx, session)
	if err != nil {
		if err := degradeRead(ctx, srv.logger, "admin_products", err); err != nil {
			return nil, err
		}

		return srv.admin(session).Products(), nil
	}

	return list, nil
}

func (srv *adminService) loadProducts(ctx context.Context, session *entity.Session) ([]entity.Product, error) {
	list, err := srv.catalogAPI.ListProducts(ctx, session.BackendToken, entity.ProductQuery{})
	if err != nil {
		return nil, errors.WithMessage(err, "list products")
	}

	return srv.admin(session).ReplaceProducts(list), nil
}

// ProductForEdit is a protected read; an expired session is reported as such
// so the client is sent to sign in.
func (srv *adminService) ProductForEdit(ctx context.Context, session *entity.Session, productID string) (*entity.Product, error) {
	product, err := srv.catalogAPI.GetProduct(ctx, session.BackendToken, productID)
	if err != nil {
		return nil, errors.WithMessage(err, "get product for edit")
	}
	srv.catalog.ReplaceProduct(*product)

	return product, nil
}

func (srv *adminService) CreateProduct(ctx context.Context, session *entity.Session, input entity.ProductInput) ([]entity.Product, error) {
	product, err := srv.api.CreateProduct(ctx, session.BackendToken, input)
	if err != nil {
		return nil, errors.WithMessage(err, "create product")
	}
	if product != nil && product.ID != "" {
		srv.catalog.ReplaceProduct(*product)
	}

	return srv.FetchProducts(ctx, session)
}

func (srv *adminService) UpdateProduct(ctx context.Context, session *entity.Session, productID string, input entity.ProductInput) ([]entity.Product, error) {
	product, err := srv.api.UpdateProduct(ctx, session.BackendToken, productID, input)
	if err != nil {
		return nil, errors.WithMessage(err, "update product")
	}
	if product != nil && product.ID != "" {
		srv.catalog.ReplaceProduct(*product)
	} else {
		srv.catalog.ForgetProduct(productID)
	}

	return srv.FetchProducts(ctx, session)
}

func (srv *adminService) DeleteProduct(ctx context.Context, session *entity.Session, productID string) ([]entity.Product, error) {
	srv.admin(session).RemoveProductLocal(productID)

	if err := srv.api.DeleteProduct(ctx, session.BackendToken, productID); err != nil {
		srv.reconcile(ctx, "products", productID, err, func() error {
			_, err := srv.loadProducts(ctx, session)

			return err
		})

		return nil, errors.WithMessage(err, "delete product")
	}
	srv.catalog.ForgetProduct(productID)

	return srv.FetchProducts(ctx, session)
}

// --- Orders ---

func (srv *adminService) FetchOrders(ctx context.Context, session *entity.Session) ([]entity.Order, error) {
	list, err := srv.api.ListAllOrders(ctx, session.BackendToken)
	if err != nil {
		if err := degradeRead(ctx, srv.logger, "admin_orders", err); err != nil {
			return nil, errors.WithMessage(err, "list all orders")
		}

		return srv.admin(session).Orders(), nil
	}

	return srv.admin(session).ReplaceOrders(list), nil
}

func (srv *adminService) UpdateOrderStatus(ctx context.Context, session *entity.Session, orderID string, status entity.OrderStatus) ([]entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + status.String())
	}

	if err := srv.api.UpdateOrderStatus(ctx, session.BackendToken, orderID, status); err != nil {
		log(ctx, srv.logger).Error("Order status update failed",
			slog.String("order_id", orderID),
			slog.String("status", status.String()),
			slog.Any("error", err),
		)

		return nil, errors.WithMessage(err, "update order status")
	}

	return srv.FetchOrders(ctx, session)
}

// --- Reviews ---

func (srv *adminService) FetchReviews(ctx context.Context, session *entity.Session) ([]entity.Review, error) {
	list, err := srv.loadReviews(ctx, session)
	if err != nil {
		if err := degradeRead(ctx, srv.logger, "admin_reviews", err); err != nil {
			return nil, err
		}

		return srv.admin(session).Reviews(), nil
	}

	return list, nil
}

func (srv *adminService) loadReviews(ctx context.Context, session *entity.Session) ([]entity.Review, error) {
	list, err := srv.api.ListAllReviews(ctx, session.BackendToken)
	if err != nil {
		return nil, errors.WithMessage(err, "list all reviews")
	}

	return srv.admin(session).ReplaceReviews(list), nil
}

// DeleteReview follows the same reconcile-by-refetch rule as users and products.
func (srv *adminService) DeleteReview(ctx context.Context, session *entity.Session, reviewID string) ([]entity.Review, error) {
	srv.admin(session).RemoveReviewLocal(reviewID)

	if err := srv.api.DeleteReview(ctx, session.BackendToken, reviewID); err != nil {
		srv.reconcile(ctx, "reviews", reviewID, err, func() error {
			_, err := srv.loadReviews(ctx, session)

			return err
		})

		return nil, errors.WithMessage(err, "delete review")
	}

	return srv.admin(session).Reviews(), nil
}

// --- Dashboard ---

func (srv *adminService) DashboardStats(ctx context.Context, session *entity.Session) *entity.DashboardStats {
	stats, err := srv.api.DashboardSummary(ctx, session.BackendToken)
	if err != nil {
		log(ctx, srv.logger).Warn("Dashboard read failed, serving previous stats", slog.Any("error", err))

		if previous := srv.admin(session).Stats(); previous != nil {
			return previous
		}

		return &entity.DashboardStats{}
	}
	srv.admin(session).SetStats(stats)

	return stats
}

// reconcile replaces an optimistically edited list with the server copy after
// a failed mutation.
func (srv *adminService) reconcile(ctx context.Context, list, id string, cause error, refetch func() error) {
	log(ctx, srv.logger).Error("Admin delete failed, reconciling",
		slog.String("list", list),
		slog.String("id", id),
		slog.Any("error", cause),
	)

	if err := refetch(); err != nil {
		log(ctx, srv.logger).Warn("Reconcile read failed", slog.String("list", list), slog.Any("error", err))
	}
}
